package chase

import (
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// countingOracle replays swerves and counts how many were drawn.
type countingOracle struct {
	script *swerve.Script
	drawn  int
}

func newOracle(results ...int) *countingOracle {
	swerves := make([]swerve.Swerve, 0, len(results))
	for _, r := range results {
		swerves = append(swerves, swerve.Swerve{Result: r})
	}
	return &countingOracle{script: swerve.NewScript(nil, swerves...)}
}

func (o *countingOracle) Swerve() swerve.Swerve {
	o.drawn++
	return o.script.Swerve()
}

func (o *countingOracle) Outcome(request swerve.OutcomeRequest) swerve.Outcome {
	return swerve.Evaluate(request)
}

// cappedVehicles caps a target's chase points when the gap narrows.
type cappedVehicles struct {
	vehicle.Service
	cap int
}

func (c cappedVehicles) NarrowTheGap(attacker vehicle.Vehicle, damage int, target vehicle.Vehicle) (vehicle.Vehicle, vehicle.Vehicle) {
	attacker, target = c.Service.NarrowTheGap(attacker, damage, target)
	if c.ChasePoints(target) > c.cap {
		target.ActionValues[vehicle.KeyChasePoints] = c.cap
	}
	return attacker, target
}

func pursuer(position vehicle.Position) vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:   "cruiser",
		Name: "Police Cruiser",
		Type: vehicle.TypeFeaturedFoe,
		ActionValues: vehicle.ActionValues{
			vehicle.KeyDriving:  15,
			vehicle.KeySqueal:   8,
			vehicle.KeyCrunch:   11,
			vehicle.KeyHandling: 6,
			vehicle.KeyFrame:    8,
			vehicle.KeyPursuer:  true,
			vehicle.KeyPosition: string(position),
		},
	}
}

func evader(position vehicle.Position) vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:   "getaway",
		Name: "Getaway Car",
		Type: vehicle.TypePC,
		ActionValues: vehicle.ActionValues{
			vehicle.KeyDriving:         13,
			vehicle.KeySqueal:          8,
			vehicle.KeyCrunch:          11,
			vehicle.KeyHandling:        6,
			vehicle.KeyFrame:           9,
			vehicle.KeyChasePoints:     3,
			vehicle.KeyConditionPoints: 1,
			vehicle.KeyPursuer:         false,
			vehicle.KeyPosition:        string(position),
		},
	}
}

func mookGroup(count int, pursuing bool) vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:    "bikers",
		Name:  "Biker Gang",
		Type:  vehicle.TypeMook,
		Count: count,
		ActionValues: vehicle.ActionValues{
			vehicle.KeyDriving:  8,
			vehicle.KeySqueal:   6,
			vehicle.KeyCrunch:   7,
			vehicle.KeyHandling: 5,
			vehicle.KeyFrame:    5,
			vehicle.KeyPursuer:  pursuing,
			vehicle.KeyPosition: "far",
		},
	}
}

// attackContext is the standard hit: swerve 6, action value 15 against 13.
func attackContext(attacker, target vehicle.Vehicle, method Method, position Position) Context {
	return Context{
		Edited:      true,
		Attacker:    attacker,
		Target:      target,
		Swerve:      swerve.Swerve{Result: 6},
		Method:      method,
		Position:    position,
		ActionValue: 15,
		Defense:     13,
		Squeal:      8,
		Handling:    6,
		Crunch:      11,
		Frame:       9,
		Count:       1,
	}
}

func intPtr(v int) *int { return &v }
