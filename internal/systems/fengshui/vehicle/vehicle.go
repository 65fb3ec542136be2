// Package vehicle models chase combatants and the rules that damage them.
//
// A Vehicle is a value: every mutator on Service returns updated copies and
// leaves its inputs untouched. Action values live in a loosely typed map, the
// way they are stored on character sheets, and are read through Service.
package vehicle

import "maps"

// Type is the kind of combatant driving the vehicle.
type Type string

const (
	TypePC          Type = "PC"
	TypeAlly        Type = "Ally"
	TypeFeaturedFoe Type = "Featured Foe"
	TypeBoss        Type = "Boss"
	TypeUberBoss    Type = "Uber-Boss"
	TypeMook        Type = "Mook"
)

// Position is the chase distance between pursuer and evader.
type Position string

const (
	Near Position = "near"
	Far  Position = "far"
)

// Action value keys.
const (
	KeyDriving         = "Driving"
	KeyHandling        = "Handling"
	KeySqueal          = "Squeal"
	KeyFrame           = "Frame"
	KeyCrunch          = "Crunch"
	KeyChasePoints     = "Chase Points"
	KeyConditionPoints = "Condition Points"
	KeyPursuer         = "Pursuer"
	KeyPosition        = "Position"
)

// ActionValues holds named numeric and string values for a vehicle.
type ActionValues map[string]any

// MaxCount is the largest headcount a mook group may carry.
const MaxCount = 1000

// ValidCount reports whether n is a usable mook headcount.
func ValidCount(n int) bool {
	return n >= 0 && n <= MaxCount
}

// Vehicle is a chase combatant. Mook groups use Count as their headcount.
type Vehicle struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	Type         Type         `yaml:"type" json:"type"`
	ActionValues ActionValues `yaml:"action_values" json:"action_values"`
	Impairments  int          `yaml:"impairments" json:"impairments"`
	Count        int          `yaml:"count" json:"count"`
}

// Clone returns a copy that shares no map with v.
func (v Vehicle) Clone() Vehicle {
	clone := v
	clone.ActionValues = maps.Clone(v.ActionValues)
	if clone.ActionValues == nil {
		clone.ActionValues = ActionValues{}
	}
	return clone
}

// with returns a copy of v with key set to value.
func (v Vehicle) with(key string, value any) Vehicle {
	clone := v.Clone()
	clone.ActionValues[key] = value
	return clone
}
