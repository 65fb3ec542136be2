// Package chase resolves attacks in a vehicle chase.
//
// An Engine turns a Context (attacker, target, method, swerve and the action
// values currently on the attack form) into a resolved Context: hit or miss,
// smackdown, chase and condition points, position changes and mook
// casualties. The engine performs no I/O. Dice come from an Oracle and every
// change to a vehicle goes through Vehicles; both are injected so tests and
// replays can pin them.
//
// Resolution has three paths:
//
//   - a single attacker against a single target (ResolveAttack), which
//     applies the method to both vehicles and reports the points that
//     actually landed;
//   - any attacker against a mook group, which removes Count mooks on a hit
//     (KillMooks);
//   - a mook group attacking, where every mook rolls its own swerve and the
//     hits are summed (ResolveMookAttacks).
//
// Process routes between them and does nothing unless the Context is marked
// Edited.
package chase
