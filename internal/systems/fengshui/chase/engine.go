package chase

import (
	"strings"

	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// Engine resolves chase attacks. It holds no state of its own; it is as safe
// for concurrent use as its Oracle.
type Engine struct {
	oracle   Oracle
	vehicles Vehicles
}

// NewEngine returns an engine rolling with oracle and updating vehicles
// through vehicles. Both are required.
func NewEngine(oracle Oracle, vehicles Vehicles) *Engine {
	if oracle == nil {
		panic("chase: oracle is required")
	}
	if vehicles == nil {
		panic("chase: vehicles is required")
	}
	return &Engine{oracle: oracle, vehicles: vehicles}
}

// CalculateAttackValues applies any typed swerve, fills the display fields
// and resolves the check for the attacker's role. Vehicles are not touched.
func (e *Engine) CalculateAttackValues(ctx Context) Context {
	if typed := strings.TrimSpace(ctx.TypedSwerve); typed != "" {
		ctx.Swerve.Result = Coerce(typed)
	}
	ctx.Mooks = nil
	ctx = e.withDisplayValues(ctx)
	if e.vehicles.IsPursuer(ctx.Attacker) {
		return e.pursue(ctx)
	}
	return e.evade(ctx)
}

func (e *Engine) withDisplayValues(ctx Context) Context {
	ctx.ModifiedDefense = DefenseString(e.vehicles, ctx)
	ctx.ModifiedActionValue = MainAttackString(ctx)
	ctx.MookDefense = TargetMookDefense(e.vehicles, ctx)
	return ctx
}

// pursue resolves a pursuer's attack. A successful narrow brings a far
// chase near.
func (e *Engine) pursue(ctx Context) Context {
	ctx = e.check(ctx)
	if ctx.Result.Success() && ctx.Method == NarrowTheGap && ctx.Position == Far {
		ctx.Position = Near
	}
	return ctx
}

// evade resolves an evader's attack. A successful widen pushes a near
// chase far.
func (e *Engine) evade(ctx Context) Context {
	ctx = e.check(ctx)
	if ctx.Result.Success() && ctx.Method == WidenTheGap && ctx.Position == Near {
		ctx.Position = Far
	}
	return ctx
}

func (e *Engine) check(ctx Context) Context {
	outcome := e.oracle.Outcome(swerve.OutcomeRequest{
		Swerve:      ctx.Swerve,
		ActionValue: ctx.ActionValue,
		Defense:     ctx.MookDefense,
		Stunt:       ctx.Stunt,
	})
	result := &Result{
		ActionResult:    outcome.ActionResult,
		Outcome:         outcome.Outcome,
		Boxcars:         ctx.Swerve.Boxcars,
		WayAwfulFailure: outcome.WayAwfulFailure,
	}
	if outcome.Success {
		result.Hit = hitFor(ctx, outcome.Outcome)
	}
	ctx.Result = result
	return ctx
}

func hitFor(ctx Context, outcome int) *Hit {
	smackdown := max(0, outcome+CalculateDamage(ctx))
	chasePoints := max(0, smackdown-CalculateToughness(ctx))
	hit := &Hit{Smackdown: smackdown, ChasePoints: chasePoints}
	if ctx.Method == RamSideswipe {
		conditionPoints := chasePoints
		hit.ConditionPoints = &conditionPoints
	}
	return hit
}

// ResolveAttack resolves one attack and applies it to both vehicles.
//
// The reported chase and condition points are what the target actually
// took, measured before and after the method was applied.
func (e *Engine) ResolveAttack(ctx Context) Context {
	ctx = e.CalculateAttackValues(ctx)
	if e.vehicles.IsMook(ctx.Target) {
		return e.KillMooks(ctx)
	}

	chaseBefore := e.vehicles.ChasePoints(ctx.Target)
	conditionBefore := e.vehicles.ConditionPoints(ctx.Target)

	attacker, target := e.ProcessMethod(ctx, smackdownOf(ctx))

	if ctx.Result != nil && ctx.Result.Hit != nil {
		hit := *ctx.Result.Hit
		hit.ChasePoints = e.vehicles.ChasePoints(target) - chaseBefore
		if hit.ConditionPoints != nil {
			landed := e.vehicles.ConditionPoints(target) - conditionBefore
			hit.ConditionPoints = &landed
		}
		result := *ctx.Result
		result.Hit = &hit
		ctx.Result = &result
	}

	ctx.Attacker = attacker
	ctx.Target = target
	return ctx
}

func smackdownOf(ctx Context) int {
	if ctx.Result == nil || ctx.Result.Hit == nil {
		return 0
	}
	return ctx.Result.Hit.Smackdown
}

// ProcessMethod applies the context's method to attacker and target with
// damage. A miss or an unknown method leaves both vehicles unchanged.
func (e *Engine) ProcessMethod(ctx Context, damage int) (vehicle.Vehicle, vehicle.Vehicle) {
	if !ctx.Success() {
		return ctx.Attacker, ctx.Target
	}
	switch ctx.Method {
	case RamSideswipe:
		return e.vehicles.RamSideswipe(ctx.Attacker, damage, ctx.Target)
	case WidenTheGap:
		return e.vehicles.WidenTheGap(ctx.Attacker, damage, ctx.Target)
	case NarrowTheGap:
		return e.vehicles.NarrowTheGap(ctx.Attacker, damage, ctx.Target)
	case Evade:
		return e.vehicles.Evade(ctx.Attacker, damage, ctx.Target)
	default:
		return ctx.Attacker, ctx.Target
	}
}
