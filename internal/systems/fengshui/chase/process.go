package chase

import "github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"

// Process resolves an edited attack. Contexts that are not Edited come back
// unchanged and no dice are rolled.
func (e *Engine) Process(ctx Context) Context {
	if !ctx.Edited {
		return ctx
	}
	if e.vehicles.IsMook(ctx.Attacker) {
		return e.ResolveMookAttacks(ctx)
	}
	return e.ResolveAttack(ctx)
}

// ProcessForm coerces a submitted form and processes it.
func (e *Engine) ProcessForm(form Form) Context {
	return e.Process(form.Context())
}

// SetAttacker loads attacker's values into the context and processes it
// again.
func (e *Engine) SetAttacker(ctx Context, attacker vehicle.Vehicle) Context {
	v := e.vehicles
	ctx.Attacker = attacker
	ctx.ActionValue = v.Driving(attacker)
	ctx.Squeal = v.Squeal(attacker)
	ctx.Crunch = v.Crunch(attacker)
	ctx.Impairments = v.Impairments(attacker)
	ctx.Position = Far
	if v.IsNear(attacker) {
		ctx.Position = Near
	}
	ctx.Method = DefaultMethod(v, attacker)
	ctx.Count = e.defaultCount(ctx)
	return e.Process(ctx)
}

// SetTarget loads target's values into the context and processes it again.
func (e *Engine) SetTarget(ctx Context, target vehicle.Vehicle) Context {
	v := e.vehicles
	ctx.Target = target
	ctx.Handling = v.Handling(target)
	ctx.Frame = v.Frame(target)
	ctx.Defense = v.Driving(target)
	ctx.Count = e.defaultCount(ctx)
	return e.Process(ctx)
}

// defaultCount is the attacking group's headcount when mooks attack, and
// one mook otherwise.
func (e *Engine) defaultCount(ctx Context) int {
	if e.vehicles.IsMook(ctx.Attacker) {
		return e.vehicles.Mooks(ctx.Attacker)
	}
	return 1
}
