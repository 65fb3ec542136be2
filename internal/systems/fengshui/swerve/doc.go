// Package swerve contains the Feng Shui dice mechanic.
//
// A swerve is one positive and one negative exploding d6; its result is the
// positive total minus the negative total. Every opposed check in a chase
// adds a swerve to an action value and compares it to a defense.
//
// The Roller and Script types both satisfy the outcome oracle consumed by the
// chase engine. Evaluate is pure and can be called without either.
package swerve
