package common

// RequestIDHeaderName carries the per-request correlation id on HTTP requests
// and responses.
const RequestIDHeaderName = "X-Request-ID"
