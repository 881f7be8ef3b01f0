// Package hashing hashes values that know how to feed themselves into a
// hash.Hash.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc returns a string digest of a Hashable. Sha256 is a HashFunc.
type HashFunc func(hashable Hashable) (string, error)

// Hash64Func returns a 64-bit digest of a Hashable. It is meant for bucketing,
// so callers must resolve collisions with an equality check.
type Hash64Func func(hashable Hashable) (uint64, error)

// Hashable is implemented by values that can write their contents to a hash.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA-256 digest of hashable.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the XXH3 64-bit digest of hashable.
func Xxh3(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// XxHash64 returns the XXH64 digest of hashable.
func XxHash64(hashable Hashable) (uint64, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return binary.Write(h, binary.BigEndian, int64(i))
}

func (i HashableInt64) Equals(other HashableInt64) bool {
	return i == other
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	return binary.Write(h, binary.BigEndian, uint64(u))
}

func (u HashableUint64) Equals(other HashableUint64) bool {
	return u == other
}

// HashableFloat64 hashes the IEEE 754 bits of the value. Negative zero hashes
// like positive zero so that values equal under == share a hash.
type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	v := float64(f)
	if v == 0 {
		v = 0
	}

	return binary.Write(h, binary.BigEndian, math.Float64bits(v))
}

func (f HashableFloat64) Equals(other HashableFloat64) bool {
	return f == other
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var bt byte
	if b {
		bt = 1
	}

	_, err := h.Write([]byte{bt})

	return err
}

func (b HashableBool) Equals(other HashableBool) bool {
	return b == other
}
