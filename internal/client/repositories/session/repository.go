// Package session persists the CLI session (server address, username and
// access token) between runs.
package session

import "context"

// Well-known keys.
const (
	KeyUsername    = "username"
	KeyAccessToken = "access_token"
	KeyEndpoint    = "endpoint"
)

// Repository is a small key/value store. Get returns "" with a nil error
// when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
