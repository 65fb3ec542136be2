package dice

import "errors"

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// maxExplosions bounds how many times one exploding die may chain.
const maxExplosions = 64

// Source is the randomness provider for dice rolls.
//
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
	// Explode rerolls and adds whenever a die shows its highest face.
	Explode bool
}

// Request is a deterministic roll request.
type Request struct {
	Dice []Spec
	Seed int64
}

// Roll holds the faces rolled for a single Spec.
//
// For exploding specs Results lists every face in the order it was rolled,
// including the extra dice, and Chains holds one subtotal per initial die.
type Roll struct {
	Sides   int
	Results []int
	Chains  []int
	Total   int
}

// Result is the outcome of a roll request.
type Result struct {
	Rolls []Roll
	Total int
}
