// Package chase exposes chase resolution over gRPC as chase.v1.ChaseService.
package chase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	apperrors "github.com/progressions/shot-client-next-sub002/internal/platform/errors"
	platformotel "github.com/progressions/shot-client-next-sub002/internal/platform/otel"
	grpcmeta "github.com/progressions/shot-client-next-sub002/internal/services/chase/api/grpc/metadata"
	"github.com/progressions/shot-client-next-sub002/internal/random"
	chasedomain "github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase/summary"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

const rngAlgo = random.RngAlgoMathRandV1

// Service implements ChaseService.
//
// Resolve request fields:
//
//	attacker | attacker_id   inline vehicle or roster id (required)
//	target | target_id       inline vehicle or roster id (required)
//	method, position         defaults come from the attacker
//	swerve | typed_swerve    rolled from the seed when both are absent
//	boxcars, stunt           booleans
//	action_value, defense, handling, squeal, frame, crunch, count,
//	impairments              override the values read from the vehicles
//	seed                     number, or string for seeds beyond 2^53
//	locale                   summary and error language
//	commit                   write roster vehicles back after the attack
//
// Swerve takes seed and optionally action_value, defense and stunt to
// judge the roll.
type Service struct {
	roster   *vehicle.Roster
	vehicles vehicle.Service
	seedFunc func() (int64, error)
	tracer   trace.Tracer
}

// NewService returns a service resolving against roster, which may be empty.
func NewService(roster *vehicle.Roster) *Service {
	if roster == nil {
		roster, _ = vehicle.NewRoster()
	}
	return &Service{
		roster:   roster,
		vehicles: vehicle.NewService(),
		seedFunc: random.NewSeed,
		tracer:   platformotel.Tracer("chase"),
	}
}

// Resolve resolves one attack and returns the resolved context.
func (s *Service) Resolve(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "resolve request is required")
	}
	if s == nil || s.seedFunc == nil {
		return nil, status.Error(codes.Internal, "seed generator is not configured")
	}
	req, err := s.decodeResolve(in)
	if err != nil {
		return nil, apperrors.HandleError(err, stringField(in.GetFields(), "locale"))
	}
	seed, source, err := s.resolveSeed(req.seed)
	if err != nil {
		return nil, apperrors.HandleError(err, req.locale)
	}

	_, span := s.tracer.Start(ctx, "chase.Resolve", trace.WithAttributes(grpcmeta.SpanAttributes(ctx)...))
	defer span.End()

	roller := swerve.NewRoller(seed)
	engine := chasedomain.NewEngine(roller, s.vehicles)
	c := engine.SetAttacker(chasedomain.Context{}, req.attacker)
	c = engine.SetTarget(c, req.target)
	req.apply(&c)
	if req.rollSwerve && !s.vehicles.IsMook(c.Attacker) {
		c.Swerve = roller.Swerve()
	}
	c.Edited = true
	c = engine.Process(c)

	if req.commit {
		if err := s.commit(req, c); err != nil {
			return nil, apperrors.HandleError(err, req.locale)
		}
	}

	span.SetAttributes(
		attribute.String("chase.method", string(c.Method)),
		attribute.String("chase.position", string(c.Position)),
		attribute.Bool("chase.success", c.Success()),
		attribute.Int("chase.count", c.Count),
		attribute.String("chase.seed_source", source),
	)

	out, err := resolveFields(c, summary.Line(c, req.locale))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode resolution: %v", err)
	}
	seedFields(out, seed, source)
	return structpb.NewStruct(out)
}

// commit stores the resolved vehicles that came from the roster.
func (s *Service) commit(req resolveRequest, c chasedomain.Context) error {
	if req.attackerID != "" {
		if err := s.roster.Put(c.Attacker); err != nil {
			return apperrors.Wrap(apperrors.CodeRosterInvalid, "commit attacker", err)
		}
	}
	if req.targetID != "" {
		if err := s.roster.Put(c.Target); err != nil {
			return apperrors.Wrap(apperrors.CodeRosterInvalid, "commit target", err)
		}
	}
	return nil
}

// Swerve rolls a swerve, optionally judging it against a defense.
func (s *Service) Swerve(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	if s == nil || s.seedFunc == nil {
		return nil, status.Error(codes.Internal, "seed generator is not configured")
	}
	fields := in.GetFields()
	locale := stringField(fields, "locale")
	requested, err := seedField(fields)
	if err != nil {
		return nil, apperrors.HandleError(err, locale)
	}
	seed, source, err := s.resolveSeed(requested)
	if err != nil {
		return nil, apperrors.HandleError(err, locale)
	}

	_, span := s.tracer.Start(ctx, "chase.Swerve", trace.WithAttributes(grpcmeta.SpanAttributes(ctx)...))
	defer span.End()

	roll := swerve.NewRoller(seed).Swerve()
	span.SetAttributes(attribute.Int("chase.swerve", roll.Result), attribute.Bool("chase.boxcars", roll.Boxcars))

	out := swerveFields(roll)
	if value, ok := fields["action_value"]; ok {
		outcome := swerve.Evaluate(swerve.OutcomeRequest{
			Swerve:      roll,
			ActionValue: chasedomain.Coerce(value.AsInterface()),
			Defense:     chasedomain.Coerce(fields["defense"].AsInterface()),
			Stunt:       boolField(fields, "stunt"),
		})
		out["outcome"] = outcomeFields(outcome)
	}
	seedFields(out, seed, source)
	return structpb.NewStruct(out)
}

func (s *Service) resolveSeed(requested *uint64) (int64, string, error) {
	seed, source, err := random.ResolveSeed(requested, s.seedFunc)
	if err == nil {
		return seed, source, nil
	}
	if errors.Is(err, random.ErrSeedOutOfRange) {
		return 0, "", apperrors.Wrap(apperrors.CodeSeedOutOfRange, "resolve seed", err)
	}
	return 0, "", status.Errorf(codes.Internal, "resolve seed: %v", err)
}
