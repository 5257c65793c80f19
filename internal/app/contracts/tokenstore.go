package contracts

import "context"

// TokenStore persists opaque credentials between invocations, the way the
// browser front end kept them in localStorage. Get returns ("", nil) for an
// absent key; Remove of an absent key is a no-op.
type TokenStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
}
