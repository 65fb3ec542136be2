package vehicle

import (
	"strings"

	"github.com/progressions/shot-client-next-sub002/internal/core/number"
)

// Service reads and updates vehicles. The zero value is ready to use.
type Service struct{}

// NewService returns a vehicle service.
func NewService() Service {
	return Service{}
}

func (Service) Driving(v Vehicle) int         { return number.Int(v.ActionValues[KeyDriving]) }
func (Service) Handling(v Vehicle) int        { return number.Int(v.ActionValues[KeyHandling]) }
func (Service) Squeal(v Vehicle) int          { return number.Int(v.ActionValues[KeySqueal]) }
func (Service) Frame(v Vehicle) int           { return number.Int(v.ActionValues[KeyFrame]) }
func (Service) Crunch(v Vehicle) int          { return number.Int(v.ActionValues[KeyCrunch]) }
func (Service) ChasePoints(v Vehicle) int     { return number.Int(v.ActionValues[KeyChasePoints]) }
func (Service) ConditionPoints(v Vehicle) int { return number.Int(v.ActionValues[KeyConditionPoints]) }
func (Service) Impairments(v Vehicle) int     { return v.Impairments }
func (Service) IsMook(v Vehicle) bool         { return v.Type == TypeMook }

// Mooks returns the headcount of a mook group.
func (Service) Mooks(v Vehicle) int {
	return v.Count
}

// IsPursuer reports whether the vehicle is chasing.
func (Service) IsPursuer(v Vehicle) bool {
	return number.Bool(v.ActionValues[KeyPursuer])
}

// IsEvader reports whether the vehicle is fleeing.
func (s Service) IsEvader(v Vehicle) bool {
	return !s.IsPursuer(v)
}

// Position returns the vehicle's position, defaulting to Far.
func (Service) Position(v Vehicle) Position {
	raw, _ := v.ActionValues[KeyPosition].(string)
	if Position(strings.ToLower(strings.TrimSpace(raw))) == Near {
		return Near
	}
	return Far
}

func (s Service) IsNear(v Vehicle) bool { return s.Position(v) == Near }
func (s Service) IsFar(v Vehicle) bool  { return s.Position(v) == Far }

// UpdatePosition returns v at position.
func (Service) UpdatePosition(v Vehicle, position Position) Vehicle {
	return v.with(KeyPosition, string(position))
}

// TakeRawChasePoints adds amount chase points without any toughness check.
func (s Service) TakeRawChasePoints(v Vehicle, amount int) Vehicle {
	if amount <= 0 {
		return v.Clone()
	}
	return v.with(KeyChasePoints, s.ChasePoints(v)+amount)
}

// TakeRawConditionPoints adds amount condition points without any toughness check.
func (s Service) TakeRawConditionPoints(v Vehicle, amount int) Vehicle {
	if amount <= 0 {
		return v.Clone()
	}
	return v.with(KeyConditionPoints, s.ConditionPoints(v)+amount)
}

// TakeChasePoints applies smackdown reduced by Handling.
func (s Service) TakeChasePoints(v Vehicle, smackdown int) Vehicle {
	return s.TakeRawChasePoints(v, max(0, smackdown-s.Handling(v)))
}

// KillMooks removes n mooks from a group, never going below zero.
func (Service) KillMooks(v Vehicle, n int) Vehicle {
	clone := v.Clone()
	if n > 0 {
		clone.Count = max(0, clone.Count-n)
	}
	return clone
}

// RamSideswipe applies a successful ram. The target takes smackdown reduced
// by its Frame as both chase and condition points; the attacker takes
// condition points equal to half the target's Frame.
//
// Against a mook group damage is a headcount and removes that many mooks.
func (s Service) RamSideswipe(attacker Vehicle, damage int, target Vehicle) (Vehicle, Vehicle) {
	if s.IsMook(target) {
		return attacker.Clone(), s.KillMooks(target, damage)
	}
	points := max(0, damage-s.Frame(target))
	updatedTarget := s.TakeRawConditionPoints(s.TakeRawChasePoints(target, points), points)
	updatedAttacker := s.TakeRawConditionPoints(attacker, s.Frame(target)/2)
	return updatedAttacker, updatedTarget
}

// WidenTheGap applies a successful widen: the target takes chase points and
// both vehicles end up far.
func (s Service) WidenTheGap(attacker Vehicle, damage int, target Vehicle) (Vehicle, Vehicle) {
	attacker, target = s.chaseHit(attacker, damage, target)
	return s.UpdatePosition(attacker, Far), s.UpdatePosition(target, Far)
}

// NarrowTheGap applies a successful narrow: the target takes chase points
// and both vehicles end up near.
func (s Service) NarrowTheGap(attacker Vehicle, damage int, target Vehicle) (Vehicle, Vehicle) {
	attacker, target = s.chaseHit(attacker, damage, target)
	return s.UpdatePosition(attacker, Near), s.UpdatePosition(target, Near)
}

// Evade applies a successful evade: the target takes chase points and
// nobody moves.
func (s Service) Evade(attacker Vehicle, damage int, target Vehicle) (Vehicle, Vehicle) {
	return s.chaseHit(attacker, damage, target)
}

func (s Service) chaseHit(attacker Vehicle, damage int, target Vehicle) (Vehicle, Vehicle) {
	if s.IsMook(target) {
		return attacker.Clone(), s.KillMooks(target, damage)
	}
	return attacker.Clone(), s.TakeChasePoints(target, damage)
}
