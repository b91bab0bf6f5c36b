// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack assembles the todos API pipeline in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// with Chain.
package middleware
