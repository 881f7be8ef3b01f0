// Package unique removes duplicates from unsorted input, keeping the first
// occurrence of each value in its original position order.
//
// For sorted input see sorted.Dedup, which needs no hashing.
package unique

import (
	"github.com/amp-labs/amp-containers/collectable"
	"github.com/amp-labs/amp-containers/hashing"
)

// Values returns the distinct elements of s in first-occurrence order.
func Values[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))

	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Collectables returns the distinct elements of s in first-occurrence order.
// Elements are bucketed by hash and compared with Equals within a bucket, so
// hash collisions never merge distinct values.
func Collectables[T collectable.Collectable[T]](s []T, hash hashing.Hash64Func) ([]T, error) {
	return distinct(s,
		func(v T) (uint64, error) { return hash(v) },
		func(a, b T) bool { return a.Equals(b) },
	)
}

// Comparable is Values routed through hashing: each element is wrapped with
// collectable.FromComparable and hashed with hash. It fails with
// collectable.ErrUnsupportedType for element types that cannot be hashed.
func Comparable[T comparable](s []T, hash hashing.Hash64Func) ([]T, error) {
	return distinct(s,
		func(v T) (uint64, error) { return hash(collectable.FromComparable(v)) },
		func(a, b T) bool { return a == b },
	)
}

func distinct[T any](s []T, hashOf func(T) (uint64, error), equal func(a, b T) bool) ([]T, error) {
	buckets := make(map[uint64][]int, len(s))
	out := make([]T, 0, len(s))

outer:
	for _, v := range s {
		key, err := hashOf(v)
		if err != nil {
			return nil, err
		}

		for _, idx := range buckets[key] {
			if equal(out[idx], v) {
				continue outer
			}
		}

		buckets[key] = append(buckets[key], len(out))
		out = append(out, v)
	}

	return out, nil
}
