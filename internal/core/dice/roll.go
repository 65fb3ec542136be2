package dice

import "math/rand"

// RollDice rolls dice based on the provided request.
//
// # Determinism
//
// RollDice is deterministic with respect to the Seed field on Request.
// Given the same Seed and the same Dice slice (including order, values and
// explode flags), RollDice will always produce the same Result.
//
// # Ordering
//
// Dice specs in Request.Dice are processed in slice order. The resulting
// Roll entries in Result.Rolls appear in the same order as the
// corresponding Spec entries in Request.Dice.
//
// # Exploding dice
//
// A Spec with Explode set rolls another die each time a die shows its
// highest face and adds it to the same chain. Feng Shui swerves roll two
// exploding d6 this way.
//
// # Errors
//
//   - At least one Spec must be provided in Request.Dice, otherwise
//     ErrMissingDice is returned.
//   - Each Spec must have Sides > 0 and Count > 0, otherwise
//     ErrInvalidDiceSpec is returned. An exploding Spec needs Sides > 1.
func RollDice(request Request) (Result, error) {
	return RollWithSource(rand.New(rand.NewSource(request.Seed)), request.Dice)
}

// RollWithSource rolls dice using a provided random source.
// This is useful when you want to control the RNG directly.
func RollWithSource(src Source, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 || (spec.Explode && spec.Sides < 2) {
			return Result{}, ErrInvalidDiceSpec
		}

		roll := Roll{
			Sides:   spec.Sides,
			Results: make([]int, 0, spec.Count),
			Chains:  make([]int, 0, spec.Count),
		}
		for i := 0; i < spec.Count; i++ {
			chain := 0
			for n := 0; ; n++ {
				value := rollDie(src, spec.Sides)
				roll.Results = append(roll.Results, value)
				chain += value
				if !spec.Explode || value != spec.Sides || n >= maxExplosions {
					break
				}
			}
			roll.Chains = append(roll.Chains, chain)
			roll.Total += chain
		}

		rolls = append(rolls, roll)
		total += roll.Total
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
