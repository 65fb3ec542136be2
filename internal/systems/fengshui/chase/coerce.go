package chase

import (
	"github.com/progressions/shot-client-next-sub002/internal/core/number"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// Coerce converts a raw form value to an int. Anything that is not a number
// becomes 0.
func Coerce(value any) int {
	return number.Int(value)
}

// Form is an attack as submitted: numeric fields may hold numbers or
// strings.
type Form struct {
	Edited bool

	Attacker vehicle.Vehicle
	Target   vehicle.Vehicle

	SwerveResult  any
	SwerveBoxcars bool
	TypedSwerve   string

	Method      Method
	Position    Position
	Stunt       bool
	Impairments any

	ActionValue any
	Handling    any
	Squeal      any
	Frame       any
	Crunch      any
	Count       any
	Defense     any
}

// Context coerces the form's numeric fields and returns the attack context.
func (f Form) Context() Context {
	return Context{
		Edited:      f.Edited,
		Attacker:    f.Attacker,
		Target:      f.Target,
		Swerve:      swerve.Swerve{Result: Coerce(f.SwerveResult), Boxcars: f.SwerveBoxcars},
		TypedSwerve: f.TypedSwerve,
		Method:      f.Method,
		Position:    f.Position,
		Stunt:       f.Stunt,
		Impairments: Coerce(f.Impairments),
		ActionValue: Coerce(f.ActionValue),
		Handling:    Coerce(f.Handling),
		Squeal:      Coerce(f.Squeal),
		Frame:       Coerce(f.Frame),
		Crunch:      Coerce(f.Crunch),
		Count:       Coerce(f.Count),
		Defense:     Coerce(f.Defense),
	}
}
