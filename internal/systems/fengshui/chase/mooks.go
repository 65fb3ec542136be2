package chase

// ResolveMookAttacks rolls a fresh swerve for each of the Count mooks in
// the attacking group and applies the summed hits to the target.
//
// Rolls are resolved and recorded in order. Typed swerves are ignored.
func (e *Engine) ResolveMookAttacks(ctx Context) Context {
	ctx.TypedSwerve = ""
	ctx.Result = nil
	ctx = e.withDisplayValues(ctx)

	attacks := &MookAttacks{Rolls: make([]MookRoll, 0, max(0, ctx.Count))}
	position := ctx.Position
	for i := 0; i < ctx.Count; i++ {
		roll := ctx
		roll.Swerve = e.oracle.Swerve()
		roll = e.CalculateAttackValues(roll)

		attacks.Rolls = append(attacks.Rolls, MookRoll{Swerve: roll.Swerve, Result: *roll.Result})
		if hit := roll.Result.Hit; hit != nil {
			attacks.Success = true
			attacks.ChasePoints += hit.ChasePoints
			if hit.ConditionPoints != nil {
				attacks.ConditionPoints += *hit.ConditionPoints
			}
			position = roll.Position
		}
	}

	ctx.Mooks = attacks
	ctx.Position = position

	attacker, target := e.ProcessMethod(ctx, 0)
	if attacks.Success {
		target = e.vehicles.TakeRawChasePoints(target, attacks.ChasePoints)
		if ctx.Method == RamSideswipe {
			target = e.vehicles.TakeRawConditionPoints(target, attacks.ConditionPoints)
		}
	}
	ctx.Attacker = attacker
	ctx.Target = target
	return ctx
}

// KillMooks resolves a hit on a mook group by removing Count mooks.
// The headcount, not the smackdown, is what gets applied.
func (e *Engine) KillMooks(ctx Context) Context {
	if !ctx.Success() {
		return ctx
	}
	ctx.Attacker, ctx.Target = e.ProcessMethod(ctx, ctx.Count)
	return ctx
}
