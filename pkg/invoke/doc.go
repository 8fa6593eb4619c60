// Package invoke performs a single HTTP call with a JSON body and reports the
// outcome as a status line followed by the decoded body text.
//
// Every call produces an Outcome. HTTP error statuses are ordinary outcomes;
// failures below HTTP (DNS, refused connections, timeouts, bad URIs) become a
// TransportFailure that reports status 0 and the error text:
//
//	inv := invoke.NewInvoker(invoke.WithLogger(logger))
//	out := inv.Do(ctx, invoke.Request{
//	    URI:  "https://httpbin.org/post",
//	    Body: []byte(`{"text":"\u65e5\u672c"}`),
//	})
//	_ = invoke.Report(os.Stdout, out, invoke.ReportOptions{})
package invoke
