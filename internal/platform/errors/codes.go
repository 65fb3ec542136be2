// Package errors provides structured chase errors with localized messages.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeAttackerMissing Code = "CHASE_ATTACKER_MISSING"
	CodeTargetMissing   Code = "CHASE_TARGET_MISSING"
	CodeInvalidMethod   Code = "CHASE_INVALID_METHOD"
	CodeInvalidVehicle  Code = "CHASE_INVALID_VEHICLE"
	CodeSameVehicle     Code = "CHASE_SAME_VEHICLE"
	CodeCountOutOfRange Code = "CHASE_COUNT_OUT_OF_RANGE"

	// Roster errors
	CodeVehicleNotFound Code = "CHASE_VEHICLE_NOT_FOUND"
	CodeRosterInvalid   Code = "CHASE_ROSTER_INVALID"

	// Dice errors
	CodeDiceMissing     Code = "DICE_MISSING"
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"
	CodeSeedOutOfRange  Code = "SEED_OUT_OF_RANGE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeAttackerMissing,
		CodeTargetMissing,
		CodeInvalidMethod,
		CodeInvalidVehicle,
		CodeSameVehicle,
		CodeCountOutOfRange,
		CodeDiceMissing,
		CodeDiceInvalidSpec,
		CodeSeedOutOfRange:
		return codes.InvalidArgument
	case CodeVehicleNotFound:
		return codes.NotFound
	case CodeRosterInvalid:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
