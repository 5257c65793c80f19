package contracts

import "context"

// RestClient is the one wire surface every resource client shares. Paths are
// appended to a fixed base URL; a bearer token is attached whenever the
// client's token key is present in the store at call time. resourceName feeds
// the "Failed to fetch X" fallback used when the backend sends no error body.
type RestClient interface {
	Get(ctx context.Context, path string, out interface{}, resourceName string) error
	Post(ctx context.Context, path string, body, out interface{}, resourceName string) error
	Put(ctx context.Context, path string, body, out interface{}, resourceName string) error
}
