// Package check implements opposed action checks.
//
// An action check adds a swerve to an action value and compares the total
// against a defense. Ties go to the attacker.
package check

// Result represents the outcome of an action check.
type Result struct {
	ActionResult int
	// Outcome is the margin over defense; negative on a failure.
	Outcome int
	Success bool
}

// MeetsDefense returns true if total >= defense.
func MeetsDefense(total, defense int) bool {
	return total >= defense
}

// Margin calculates the margin of success or failure.
func Margin(total, defense int) int {
	return total - defense
}

// Resolve performs an action check of actionValue plus swerve against defense.
func Resolve(actionValue, swerve, defense int) Result {
	total := actionValue + swerve
	return Result{
		ActionResult: total,
		Outcome:      Margin(total, defense),
		Success:      MeetsDefense(total, defense),
	}
}
