package cache

import (
	"context"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Open creates a cache from a backend name and its location: a directory
// for file, a redis:// URL for redis and a mongodb:// URI for mongo.
func Open(ctx context.Context, backend, location string) (Cache, error) {
	switch backend {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		return NewFileCache(location)
	case BackendRedis:
		return DialRedis(ctx, location, "tidytree:")
	case BackendMongo:
		return DialMongo(ctx, location, "tidytree", "cache")
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "unknown cache backend %q (must be none, file, redis or mongo)", backend)
	}
}
