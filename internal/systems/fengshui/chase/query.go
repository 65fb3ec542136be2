package chase

import (
	"strconv"

	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// MainAttackString renders the attacker's action value.
func MainAttackString(ctx Context) string {
	return strconv.Itoa(ctx.ActionValue)
}

// TargetMookDefense returns the defense against the target. Attacking
// several mooks of a group at once adds one per mook targeted.
func TargetMookDefense(acc Accessor, ctx Context) int {
	if acc.IsMook(ctx.Target) && ctx.Count > 1 {
		return ctx.Defense + ctx.Count
	}
	return ctx.Defense
}

// DefenseString renders the target's defense. A stunt adds its bonus and an
// asterisk; an impaired target gets an asterisk only.
func DefenseString(acc Accessor, ctx Context) string {
	if ctx.Stunt {
		return strconv.Itoa(ctx.Defense+swerve.StuntDefenseBonus) + "*"
	}
	if acc.Impairments(ctx.Target) > 0 {
		return strconv.Itoa(ctx.Defense) + "*"
	}
	return strconv.Itoa(ctx.Defense)
}

// CalculateToughness returns the target stat that soaks damage.
func CalculateToughness(ctx Context) int {
	if ctx.Method == RamSideswipe {
		return ctx.Frame
	}
	return ctx.Handling
}

// CalculateDamage returns the attacker stat added to the outcome.
func CalculateDamage(ctx Context) int {
	if ctx.Method == RamSideswipe {
		return ctx.Crunch
	}
	return ctx.Squeal
}

// DefaultMethod picks the usual maneuver for the attacker's role and position.
func DefaultMethod(acc Accessor, attacker vehicle.Vehicle) Method {
	switch {
	case acc.IsPursuer(attacker) && acc.IsNear(attacker):
		return RamSideswipe
	case acc.IsPursuer(attacker) && acc.IsFar(attacker):
		return NarrowTheGap
	case acc.IsEvader(attacker) && acc.IsNear(attacker):
		return WidenTheGap
	default:
		return Evade
	}
}
