package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the gRPC metadata key carrying the request id used to
// correlate server-side diagnostics with a call.
const RequestIDHeaderName = "x-request-id"

// TemporaryPasswordLength is the length of passwords generated for accounts
// created without one.
const TemporaryPasswordLength = 6
