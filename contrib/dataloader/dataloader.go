// Package dataloader provides generic helpers for batch loading records
// from a store.
//
// The helpers are designed to plug into any DataLoader implementation
// such as:
//   - github.com/graph-gophers/dataloader/v7
//   - github.com/vikstrous/dataloadgen
//
// # Basic Usage
//
// BatchRead turns a store into a batch function keyed by native id:
//
//	loader := dataloadgen.NewLoader(dataloader.BatchRead[User](g))
//	user, err := loader.Load(ctx, userID)
//
// # Ordering Results
//
// Batch functions assembled by hand must return results in request
// order. OrderByKeys reorders an unordered load:
//
//	users := collectMatching[User](ctx, g, pred)
//	ordered, errs := dataloader.OrderByKeys(ids, users, func(u User) dialect.ID {
//	    return dialect.ID(u.ID)
//	})
//
// # One-to-Many Relationships
//
// Records reference each other through properties holding the native id
// of the target vertex. GroupByKey buckets the loaded children by that
// reference:
//
//	grouped := dataloader.GroupByKey(comments, func(c Comment) int64 { return c.PostID })
//	ordered := dataloader.OrderGroupsByKeys(postIDs, grouped)
package dataloader

import (
	"context"
	"errors"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/dialect"
)

// ErrNotFound is returned for keys a batch result carries no record for.
var ErrNotFound = errors.New("dataloader: record not found")

// KeyFunc extracts a key from a record.
type KeyFunc[K comparable, V any] func(V) K

// BatchFunc loads a batch of records by their keys. The returned slices
// are in key order and have the same length as keys.
type BatchFunc[K comparable, V any] func(ctx context.Context, keys []K) ([]V, []error)

// BatchRead returns a batch function that loads records of type T from
// the store by native id. Missing vertices and label mismatches surface
// as per-key errors, so one bad key does not fail the whole batch.
func BatchRead[T any](g dialect.Graph) BatchFunc[dialect.ID, T] {
	return func(ctx context.Context, ids []dialect.ID) ([]T, []error) {
		values := make([]T, len(ids))
		errs := make([]error, len(ids))
		for i, id := range ids {
			values[i], errs[i] = grafo.Read[T](ctx, g, id)
		}
		return values, errs
	}
}

// BatchReadWith is like BatchRead but decodes through the given
// marshaller instead of the registry.
func BatchReadWith[T any](g dialect.Graph, m grafo.Marshaller[T]) BatchFunc[dialect.ID, T] {
	return func(ctx context.Context, ids []dialect.ID) ([]T, []error) {
		values := make([]T, len(ids))
		errs := make([]error, len(ids))
		for i, id := range ids {
			values[i], errs[i] = grafo.ReadWith(ctx, g, m, id)
		}
		return values, errs
	}
}

// OrderByKeys reorders records to match the order of requested keys.
// Missing records are represented as zero values with ErrNotFound in the
// error slice, which keeps both slices aligned with keys the way batch
// loaders require.
func OrderByKeys[K comparable, V any](keys []K, values []V, keyFn KeyFunc[K, V]) ([]V, []error) {
	lookup := make(map[K]V, len(values))
	for _, v := range values {
		lookup[keyFn(v)] = v
	}

	result := make([]V, len(keys))
	errs := make([]error, len(keys))
	for i, key := range keys {
		if v, ok := lookup[key]; ok {
			result[i] = v
		} else {
			errs[i] = ErrNotFound
		}
	}
	return result, errs
}

// OrderByKeysNoError reorders records to match the order of requested
// keys, leaving zero values for missing records. Use this when absent
// records are acceptable, such as optional references.
func OrderByKeysNoError[K comparable, V any](keys []K, values []V, keyFn KeyFunc[K, V]) []V {
	result, _ := OrderByKeys(keys, values, keyFn)
	return result
}

// GroupByKey groups records by a key function. Useful for one-to-many
// relationships where several records share the same reference property.
func GroupByKey[K comparable, V any](values []V, keyFn KeyFunc[K, V]) map[K][]V {
	result := make(map[K][]V)
	for _, v := range values {
		key := keyFn(v)
		result[key] = append(result[key], v)
	}
	return result
}

// OrderGroupsByKeys reorders grouped records to match the order of
// requested keys. The result has one inner slice per key; keys without
// records get a nil slice.
func OrderGroupsByKeys[K comparable, V any](keys []K, groups map[K][]V) [][]V {
	result := make([][]V, len(keys))
	for i, key := range keys {
		result[i] = groups[key]
	}
	return result
}

// CachePrimer is the priming side of a DataLoader cache.
type CachePrimer[K comparable, V any] interface {
	Prime(key K, value V)
}

// PrimeMany primes multiple records into a cache. Useful after scans to
// make the fetched records available to later point loads.
func PrimeMany[K comparable, V any](cache CachePrimer[K, V], values []V, keyFn KeyFunc[K, V]) {
	for _, v := range values {
		cache.Prime(keyFn(v), v)
	}
}

// CacheClearer is the invalidation side of a DataLoader cache.
type CacheClearer[K comparable] interface {
	Clear(key K)
}

// ClearMany clears multiple keys from a cache, typically after updates
// or deletes.
func ClearMany[K comparable](cache CacheClearer[K], keys []K) {
	for _, key := range keys {
		cache.Clear(key)
	}
}

// ctxKey is the context key for storing loaders.
type ctxKey struct{}

// WithLoaders injects request-scoped loaders into the context. Handlers
// build one loader set per request so batching never crosses requests:
//
//	func loaderMiddleware(g dialect.Graph) func(http.Handler) http.Handler {
//	    return func(next http.Handler) http.Handler {
//	        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	            ctx := dataloader.WithLoaders(r.Context(), newLoaders(g))
//	            next.ServeHTTP(w, r.WithContext(ctx))
//	        })
//	    }
//	}
func WithLoaders[T any](ctx context.Context, loaders T) context.Context {
	return context.WithValue(ctx, ctxKey{}, loaders)
}

// For extracts loaders of type T from the context, returning the zero
// value when none were attached.
func For[T any](ctx context.Context) T {
	v, _ := ctx.Value(ctxKey{}).(T)
	return v
}

// BatchResult pairs one loaded record with its per-key error.
type BatchResult[V any] struct {
	Value V
	Error error
}

// NewBatchResult creates a new BatchResult.
func NewBatchResult[V any](value V, err error) BatchResult[V] {
	return BatchResult[V]{Value: value, Error: err}
}

// Results zips separate value and error slices into a BatchResult slice.
func Results[V any](values []V, errs []error) []BatchResult[V] {
	results := make([]BatchResult[V], len(values))
	for i := range values {
		var err error
		if i < len(errs) {
			err = errs[i]
		}
		results[i] = BatchResult[V]{Value: values[i], Error: err}
	}
	return results
}
