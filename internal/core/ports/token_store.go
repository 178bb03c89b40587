package ports

import "context"

// TokenStore is the durable holder of the single bearer token. At most one
// token is stored at a time; presence does not imply validity.
type TokenStore interface {
	// Set stores the token, overwriting any previous value.
	Set(ctx context.Context, token string) error
	// Get returns the stored token. It never fails: when the storage medium
	// is unavailable or holds nothing, it reports absent.
	Get(ctx context.Context) (token string, ok bool)
	// Clear removes the stored token. Idempotent.
	Clear(ctx context.Context) error
}
