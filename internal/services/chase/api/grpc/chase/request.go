package chase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	apperrors "github.com/progressions/shot-client-next-sub002/internal/platform/errors"
	chasedomain "github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// resolveRequest is a decoded Resolve request.
type resolveRequest struct {
	attacker   vehicle.Vehicle
	target     vehicle.Vehicle
	attackerID string
	targetID   string
	fields     map[string]*structpb.Value
	rollSwerve bool
	seed       *uint64
	locale     string
	commit     bool
}

// Fields that override values loaded from the vehicles.
var intOverrides = map[string]func(*chasedomain.Context, int){
	"action_value": func(c *chasedomain.Context, v int) { c.ActionValue = v },
	"defense":      func(c *chasedomain.Context, v int) { c.Defense = v },
	"handling":     func(c *chasedomain.Context, v int) { c.Handling = v },
	"squeal":       func(c *chasedomain.Context, v int) { c.Squeal = v },
	"frame":        func(c *chasedomain.Context, v int) { c.Frame = v },
	"crunch":       func(c *chasedomain.Context, v int) { c.Crunch = v },
	"count":        func(c *chasedomain.Context, v int) { c.Count = v },
	"impairments":  func(c *chasedomain.Context, v int) { c.Impairments = v },
	"swerve":       func(c *chasedomain.Context, v int) { c.Swerve.Result = v },
}

func (s *Service) decodeResolve(in *structpb.Struct) (resolveRequest, error) {
	fields := in.GetFields()
	req := resolveRequest{
		fields: fields,
		locale: stringField(fields, "locale"),
		commit: boolField(fields, "commit"),
	}

	var err error
	req.attacker, req.attackerID, err = s.vehicleField(fields, "attacker", apperrors.CodeAttackerMissing)
	if err != nil {
		return resolveRequest{}, err
	}
	req.target, req.targetID, err = s.vehicleField(fields, "target", apperrors.CodeTargetMissing)
	if err != nil {
		return resolveRequest{}, err
	}
	if req.attacker.ID != "" && req.attacker.ID == req.target.ID {
		return resolveRequest{}, apperrors.New(apperrors.CodeSameVehicle, "attacker and target are the same vehicle")
	}

	if value, ok := fields["count"]; ok {
		if err := checkCount(chasedomain.Coerce(value.AsInterface()), "count"); err != nil {
			return resolveRequest{}, err
		}
	}

	if method := stringField(fields, "method"); method != "" {
		if !chasedomain.Method(method).Valid() {
			return resolveRequest{}, apperrors.WithMetadata(apperrors.CodeInvalidMethod, "unknown chase method", map[string]string{"Method": method})
		}
	}

	_, swerveSet := fields["swerve"]
	req.rollSwerve = !swerveSet && stringField(fields, "typed_swerve") == ""

	req.seed, err = seedField(fields)
	if err != nil {
		return resolveRequest{}, err
	}
	return req, nil
}

// apply copies the request's explicit values over c.
func (r resolveRequest) apply(c *chasedomain.Context) {
	for name, set := range intOverrides {
		if value, ok := r.fields[name]; ok {
			set(c, chasedomain.Coerce(value.AsInterface()))
		}
	}
	if method := stringField(r.fields, "method"); method != "" {
		c.Method = chasedomain.Method(method)
	}
	switch strings.ToLower(stringField(r.fields, "position")) {
	case string(chasedomain.Near):
		c.Position = chasedomain.Near
	case string(chasedomain.Far):
		c.Position = chasedomain.Far
	}
	c.TypedSwerve = stringField(r.fields, "typed_swerve")
	c.Swerve.Boxcars = boolField(r.fields, "boxcars")
	c.Stunt = boolField(r.fields, "stunt")
}

// vehicleField reads an inline vehicle from name or a roster vehicle from
// name+"_id".
func (s *Service) vehicleField(fields map[string]*structpb.Value, name string, missing apperrors.Code) (vehicle.Vehicle, string, error) {
	if inline := fields[name].GetStructValue(); inline != nil {
		v, err := decodeVehicle(inline)
		if err != nil {
			return vehicle.Vehicle{}, "", apperrors.WrapWithMetadata(apperrors.CodeInvalidVehicle, "decode "+name, map[string]string{"Field": name}, err)
		}
		if err := checkCount(v.Count, name+".count"); err != nil {
			return vehicle.Vehicle{}, "", err
		}
		return v, "", nil
	}
	id := stringField(fields, name+"_id")
	if id == "" {
		return vehicle.Vehicle{}, "", apperrors.New(missing, name+" is required")
	}
	v, ok := s.roster.Get(id)
	if !ok {
		return vehicle.Vehicle{}, "", apperrors.WithMetadata(apperrors.CodeVehicleNotFound, "roster lookup", map[string]string{"VehicleID": id})
	}
	return v, id, nil
}

// checkCount bounds a client supplied headcount; the engine rolls once per
// mook.
func checkCount(n int, field string) error {
	if vehicle.ValidCount(n) {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodeCountOutOfRange, field+" out of range", map[string]string{
		"Field": field,
		"Count": strconv.Itoa(n),
		"Max":   strconv.Itoa(vehicle.MaxCount),
	})
}

func decodeVehicle(in *structpb.Struct) (vehicle.Vehicle, error) {
	data, err := protojson.Marshal(in)
	if err != nil {
		return vehicle.Vehicle{}, err
	}
	var v vehicle.Vehicle
	if err := json.Unmarshal(data, &v); err != nil {
		return vehicle.Vehicle{}, err
	}
	if v.ActionValues == nil {
		v.ActionValues = vehicle.ActionValues{}
	}
	return v, nil
}

// seedField reads an optional seed. Seeds beyond 2^53 must be sent as
// strings to survive the float64 encoding of Struct numbers.
func seedField(fields map[string]*structpb.Value) (*uint64, error) {
	value, ok := fields["seed"]
	if !ok {
		return nil, nil
	}
	outOfRange := apperrors.New(apperrors.CodeSeedOutOfRange, "seed out of range")
	switch kind := value.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_StringValue:
		raw := strings.TrimSpace(kind.StringValue)
		if raw == "" {
			return nil, nil
		}
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, outOfRange
		}
		return &seed, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n < 0 || n != math.Trunc(n) || n > 1<<53 {
			return nil, outOfRange
		}
		seed := uint64(n)
		return &seed, nil
	default:
		return nil, outOfRange
	}
}

func stringField(fields map[string]*structpb.Value, name string) string {
	return strings.TrimSpace(fields[name].GetStringValue())
}

func boolField(fields map[string]*structpb.Value, name string) bool {
	value, ok := fields[name]
	if !ok {
		return false
	}
	if s, ok := value.GetKind().(*structpb.Value_StringValue); ok {
		parsed, _ := strconv.ParseBool(strings.TrimSpace(s.StringValue))
		return parsed
	}
	return value.GetBoolValue()
}
