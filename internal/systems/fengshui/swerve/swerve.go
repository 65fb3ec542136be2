package swerve

import (
	"math/rand"

	"github.com/progressions/shot-client-next-sub002/internal/core/check"
	"github.com/progressions/shot-client-next-sub002/internal/core/dice"
)

// StuntDefenseBonus is added to the defense of a stunting attacker's target.
const StuntDefenseBonus = 2

var swerveDice = []dice.Spec{
	{Sides: 6, Count: 1, Explode: true},
	{Sides: 6, Count: 1, Explode: true},
}

// Swerve is a resolved swerve roll.
type Swerve struct {
	Result int
	// Boxcars is set when both dice first came up 6.
	Boxcars   bool
	Positives []int
	Negatives []int
}

// OutcomeRequest is the input to Evaluate.
type OutcomeRequest struct {
	Swerve      Swerve
	ActionValue int
	Defense     int
	Stunt       bool
}

// Outcome is the result of an opposed check.
type Outcome struct {
	Success         bool
	ActionResult    int
	Outcome         int
	WayAwfulFailure bool
}

// FromDice builds a swerve from a two-spec dice result: positive first.
func FromDice(result dice.Result) Swerve {
	if len(result.Rolls) < 2 {
		return Swerve{}
	}
	positives := result.Rolls[0].Results
	negatives := result.Rolls[1].Results
	return Swerve{
		Result:    result.Rolls[0].Total - result.Rolls[1].Total,
		Boxcars:   len(positives) > 0 && len(negatives) > 0 && positives[0] == 6 && negatives[0] == 6,
		Positives: positives,
		Negatives: negatives,
	}
}

// Evaluate resolves an opposed check. Stunts raise the defense by
// StuntDefenseBonus; boxcars on a failed check is a way-awful failure.
func Evaluate(request OutcomeRequest) Outcome {
	defense := request.Defense
	if request.Stunt {
		defense += StuntDefenseBonus
	}
	result := check.Resolve(request.ActionValue, request.Swerve.Result, defense)
	return Outcome{
		Success:         result.Success,
		ActionResult:    result.ActionResult,
		Outcome:         result.Outcome,
		WayAwfulFailure: request.Swerve.Boxcars && !result.Success,
	}
}

// Roller draws swerves from a seeded source. It is not safe for concurrent use.
type Roller struct {
	seed int64
	rng  *rand.Rand
}

// NewRoller creates a roller whose swerves are reproducible from seed.
func NewRoller(seed int64) *Roller {
	return &Roller{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the roller was created with.
func (r *Roller) Seed() int64 {
	return r.seed
}

// Swerve rolls the next swerve.
func (r *Roller) Swerve() Swerve {
	result, err := dice.RollWithSource(r.rng, swerveDice)
	if err != nil {
		// Unreachable: swerveDice is fixed and valid.
		panic(err)
	}
	return FromDice(result)
}

// Outcome evaluates an opposed check.
func (r *Roller) Outcome(request OutcomeRequest) Outcome {
	return Evaluate(request)
}
