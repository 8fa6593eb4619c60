// Package domain holds the error values shared across callapi packages.
package domain
