// Package http implements the HTTP boundary of the service.
//
// It exposes the chi router, request handlers, and middleware. Tracing,
// access logging, metrics, rate limiting and authentication are handled at
// this layer; every error is translated to a status code in one place
// (errors_mapper.go) before the response is written.
package http
