// Package textdecode turns raw response bytes into display text.
//
// Body resolves the response charset (declared charset, else UTF-8) and
// decodes lossily. UnicodeEscapes then resolves literal \uXXXX sequences that
// servers leave in already-decoded text, such as echoed JSON.
package textdecode
