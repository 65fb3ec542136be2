// Package random provides seed generation for the deterministic dice roller.
//
// Server seeds come from crypto/rand. Callers replaying a chase may supply
// their own seed instead; ResolveSeed decides which one a roll uses.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const (
	// SeedSourceServer marks a seed generated by the server.
	SeedSourceServer = "SERVER"
	// SeedSourceClient marks a seed supplied by the caller.
	SeedSourceClient = "CLIENT"
	// RngAlgoMathRandV1 identifies the math/rand source used by core/dice.
	RngAlgoMathRandV1 = "math_rand_v1"
)

const maxSeedInt64 = math.MaxInt64

// ErrSeedOutOfRange is returned when a client seed does not fit in an int64.
var ErrSeedOutOfRange = errors.New("seed must fit in a signed 64-bit integer")

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:]) & maxSeedInt64), nil
}

// ResolveSeed returns the seed to roll with and where it came from.
//
// A non-nil requested seed is used as-is; otherwise seedFunc generates one.
func ResolveSeed(requested *uint64, seedFunc func() (int64, error)) (int64, string, error) {
	if requested != nil {
		if *requested > maxSeedInt64 {
			return 0, "", ErrSeedOutOfRange
		}
		return int64(*requested), SeedSourceClient, nil
	}
	if seedFunc == nil {
		return 0, "", errors.New("seed generator is not configured")
	}
	seed, err := seedFunc()
	if err != nil {
		return 0, "", err
	}
	return seed, SeedSourceServer, nil
}
