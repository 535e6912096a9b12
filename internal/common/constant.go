package common

// RequestIDHeaderName is the HTTP header used to carry the request id on
// inbound requests and echo it on responses.
const RequestIDHeaderName = "X-Request-ID"

// ServiceName is used as a metrics namespace and in the health payload.
const ServiceName = "socialscribe"

// Version is reported by the health endpoint. Overridden at build time with
// -ldflags "-X github.com/dmitrijs2005/socialscribe/internal/common.Version=...".
var Version = "1.0.0"
