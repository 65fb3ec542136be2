package random

import (
	"errors"
	"testing"
)

func TestNewSeedIsNonNegative(t *testing.T) {
	for i := 0; i < 32; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed returned error: %v", err)
		}
		if seed < 0 {
			t.Fatalf("seed = %d, want non-negative", seed)
		}
	}
}

func TestResolveSeedDefaultsToServerSeed(t *testing.T) {
	seed, source, err := ResolveSeed(nil, func() (int64, error) {
		return 123, nil
	})
	if err != nil {
		t.Fatalf("ResolveSeed returned error: %v", err)
	}
	if seed != 123 {
		t.Fatalf("seed = %d, want 123", seed)
	}
	if source != SeedSourceServer {
		t.Fatalf("seed source = %q, want %q", source, SeedSourceServer)
	}
}

func TestResolveSeedUsesClientSeed(t *testing.T) {
	seedValue := uint64(77)
	seed, source, err := ResolveSeed(&seedValue, func() (int64, error) {
		return 123, nil
	})
	if err != nil {
		t.Fatalf("ResolveSeed returned error: %v", err)
	}
	if seed != 77 {
		t.Fatalf("seed = %d, want 77", seed)
	}
	if source != SeedSourceClient {
		t.Fatalf("seed source = %q, want %q", source, SeedSourceClient)
	}
}

func TestResolveSeedRejectsOutOfRangeSeed(t *testing.T) {
	seedValue := uint64(maxSeedInt64) + 1
	_, _, err := ResolveSeed(&seedValue, NewSeed)
	if !errors.Is(err, ErrSeedOutOfRange) {
		t.Fatalf("error = %v, want %v", err, ErrSeedOutOfRange)
	}
}

func TestResolveSeedPropagatesGeneratorError(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := ResolveSeed(nil, func() (int64, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if _, _, err := ResolveSeed(nil, nil); err == nil {
		t.Fatal("expected error for missing seed generator")
	}
}
