// Package middleware provides observability wrappers for typed
// parameter resolution.
//
// Both are urltype.Middleware implementations passed to the resolver at
// install time:
//
//	reg, err := urltype.Install(host, descriptors,
//	    urltype.WithMiddleware(
//	        middleware.OpenTelemetry(middleware.WithTracerName("my-app")),
//	        middleware.Prometheus(middleware.WithNamespace("myapp")),
//	    ),
//	)
//
// The resolver itself never logs, retries or records anything; these
// wrappers are the only place resolution becomes observable.
package middleware
