package chase

import (
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// Method is the chase maneuver an attacker attempts.
type Method string

const (
	RamSideswipe Method = "RAM_SIDESWIPE"
	WidenTheGap  Method = "WIDEN_THE_GAP"
	NarrowTheGap Method = "NARROW_THE_GAP"
	Evade        Method = "EVADE"
)

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case RamSideswipe, WidenTheGap, NarrowTheGap, Evade:
		return true
	default:
		return false
	}
}

// Position is the distance between the two vehicles.
type Position = vehicle.Position

const (
	Near = vehicle.Near
	Far  = vehicle.Far
)

// Oracle rolls swerves and judges opposed checks.
type Oracle interface {
	Swerve() swerve.Swerve
	Outcome(swerve.OutcomeRequest) swerve.Outcome
}

// Accessor reads vehicle values.
type Accessor interface {
	Driving(vehicle.Vehicle) int
	Handling(vehicle.Vehicle) int
	Squeal(vehicle.Vehicle) int
	Frame(vehicle.Vehicle) int
	Crunch(vehicle.Vehicle) int
	ChasePoints(vehicle.Vehicle) int
	ConditionPoints(vehicle.Vehicle) int
	Mooks(vehicle.Vehicle) int
	Impairments(vehicle.Vehicle) int
	IsMook(vehicle.Vehicle) bool
	IsPursuer(vehicle.Vehicle) bool
	IsEvader(vehicle.Vehicle) bool
	IsNear(vehicle.Vehicle) bool
	IsFar(vehicle.Vehicle) bool
}

// Mutator returns updated copies of vehicles.
type Mutator interface {
	RamSideswipe(attacker vehicle.Vehicle, damage int, target vehicle.Vehicle) (vehicle.Vehicle, vehicle.Vehicle)
	WidenTheGap(attacker vehicle.Vehicle, damage int, target vehicle.Vehicle) (vehicle.Vehicle, vehicle.Vehicle)
	NarrowTheGap(attacker vehicle.Vehicle, damage int, target vehicle.Vehicle) (vehicle.Vehicle, vehicle.Vehicle)
	Evade(attacker vehicle.Vehicle, damage int, target vehicle.Vehicle) (vehicle.Vehicle, vehicle.Vehicle)
	TakeRawChasePoints(v vehicle.Vehicle, amount int) vehicle.Vehicle
	TakeRawConditionPoints(v vehicle.Vehicle, amount int) vehicle.Vehicle
	KillMooks(v vehicle.Vehicle, n int) vehicle.Vehicle
	UpdatePosition(v vehicle.Vehicle, position vehicle.Position) vehicle.Vehicle
}

// Vehicles is the full entity contract the engine consumes.
type Vehicles interface {
	Accessor
	Mutator
}

// Context is one pending attack. Engine methods take a Context by value and
// return a new one.
type Context struct {
	// Edited marks the attack as ready to resolve; Process ignores it otherwise.
	Edited bool

	Attacker vehicle.Vehicle
	Target   vehicle.Vehicle

	Swerve swerve.Swerve
	// TypedSwerve, when non-empty, replaces Swerve.Result.
	TypedSwerve string

	Method   Method
	Position Position
	Stunt    bool
	// Impairments is the attacker's impairment count, for display.
	Impairments int

	ActionValue int
	Handling    int
	Squeal      int
	Frame       int
	Crunch      int
	Count       int
	Defense     int

	MookDefense         int
	ModifiedDefense     string
	ModifiedActionValue string

	// Result is nil until a single attack is resolved.
	Result *Result
	// Mooks is set only when a mook group attacked.
	Mooks *MookAttacks
}

// Success reports whether the resolved attack hit. For a mook group it is
// true when any mook hit.
func (c Context) Success() bool {
	if c.Mooks != nil {
		return c.Mooks.Success
	}
	return c.Result != nil && c.Result.Success()
}

// Result is a resolved single attack. Hit is nil on a miss.
type Result struct {
	ActionResult    int
	Outcome         int
	Boxcars         bool
	WayAwfulFailure bool
	Hit             *Hit
}

// Success reports whether the attack hit.
func (r Result) Success() bool {
	return r.Hit != nil
}

// Hit holds the damage of a successful attack.
type Hit struct {
	Smackdown   int
	ChasePoints int
	// ConditionPoints is set only for RAM_SIDESWIPE.
	ConditionPoints *int
}

// MookRoll is one mook's attack within a mook group.
type MookRoll struct {
	Swerve swerve.Swerve
	Result
}

// MookAttacks aggregates every mook's attack. Misses count as zero points.
type MookAttacks struct {
	Rolls           []MookRoll
	Success         bool
	ChasePoints     int
	ConditionPoints int
}
