package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc/status"

	apperrors "github.com/progressions/shot-client-next-sub002/internal/platform/errors"
	"github.com/progressions/shot-client-next-sub002/internal/platform/timeouts"
)

// ChaseClient is the subset of the ChaseService client the tools call.
type ChaseClient interface {
	ResolveMap(ctx context.Context, in map[string]any) (map[string]any, error)
	SwerveMap(ctx context.Context, in map[string]any) (map[string]any, error)
}

// VehicleInput describes a vehicle inline, without a roster.
type VehicleInput struct {
	ID           string         `json:"id,omitempty" jsonschema:"vehicle identifier"`
	Name         string         `json:"name,omitempty" jsonschema:"display name"`
	Type         string         `json:"type,omitempty" jsonschema:"PC, Ally, Featured Foe, Boss, Uber-Boss or Mook"`
	ActionValues map[string]any `json:"action_values,omitempty" jsonschema:"Driving, Handling, Squeal, Frame, Crunch, Chase Points, Condition Points, Pursuer, Position"`
	Impairments  int            `json:"impairments,omitempty" jsonschema:"impairment count"`
	Count        int            `json:"count,omitempty" jsonschema:"mook group headcount"`
}

// ChaseResolveInput represents the MCP tool input for resolving an attack.
type ChaseResolveInput struct {
	AttackerID  string        `json:"attacker_id,omitempty" jsonschema:"roster id of the attacking vehicle"`
	TargetID    string        `json:"target_id,omitempty" jsonschema:"roster id of the target vehicle"`
	Attacker    *VehicleInput `json:"attacker,omitempty" jsonschema:"inline attacking vehicle"`
	Target      *VehicleInput `json:"target,omitempty" jsonschema:"inline target vehicle"`
	Method      string        `json:"method,omitempty" jsonschema:"RAM_SIDESWIPE, WIDEN_THE_GAP, NARROW_THE_GAP or EVADE"`
	Position    string        `json:"position,omitempty" jsonschema:"near or far"`
	Swerve      *int          `json:"swerve,omitempty" jsonschema:"known swerve; rolled when omitted"`
	TypedSwerve string        `json:"typed_swerve,omitempty" jsonschema:"swerve typed at the table"`
	Boxcars     bool          `json:"boxcars,omitempty" jsonschema:"whether the known swerve was boxcars"`
	Stunt       bool          `json:"stunt,omitempty" jsonschema:"whether the attacker stunts"`
	ActionValue *int          `json:"action_value,omitempty" jsonschema:"override the attacker's Driving"`
	Defense     *int          `json:"defense,omitempty" jsonschema:"override the target's Driving"`
	Handling    *int          `json:"handling,omitempty" jsonschema:"override the target's Handling"`
	Squeal      *int          `json:"squeal,omitempty" jsonschema:"override the attacker's Squeal"`
	Frame       *int          `json:"frame,omitempty" jsonschema:"override the target's Frame"`
	Crunch      *int          `json:"crunch,omitempty" jsonschema:"override the attacker's Crunch"`
	Count       *int          `json:"count,omitempty" jsonschema:"attacking mooks, or mooks targeted"`
	Impairments *int          `json:"impairments,omitempty" jsonschema:"override the attacker's impairments"`
	Seed        *uint64       `json:"seed,omitempty" jsonschema:"optional seed for deterministic rolls"`
	Locale      string        `json:"locale,omitempty" jsonschema:"language for the summary and errors"`
	Commit      bool          `json:"commit,omitempty" jsonschema:"store roster vehicles after the attack"`
}

// RngResult represents RNG details used for a roll.
type RngResult struct {
	SeedUsed   string `json:"seed_used" jsonschema:"seed value used by the server"`
	RngAlgo    string `json:"rng_algo" jsonschema:"rng algorithm identifier"`
	SeedSource string `json:"seed_source" jsonschema:"seed source (CLIENT or SERVER)"`
}

// SwerveResult represents one swerve roll.
type SwerveResult struct {
	Result    int   `json:"result" jsonschema:"positive total minus negative total"`
	Boxcars   bool  `json:"boxcars" jsonschema:"whether both dice first came up 6"`
	Positives []int `json:"positives" jsonschema:"positive die results"`
	Negatives []int `json:"negatives" jsonschema:"negative die results"`
}

// HitResult represents the damage of a successful attack.
type HitResult struct {
	Smackdown       int  `json:"smackdown" jsonschema:"outcome plus Squeal or Crunch"`
	ChasePoints     int  `json:"chase_points" jsonschema:"chase points the target took"`
	ConditionPoints *int `json:"condition_points,omitempty" jsonschema:"condition points the target took, rams only"`
}

// AttackResult represents a resolved single attack.
type AttackResult struct {
	ActionResult    int           `json:"action_result" jsonschema:"action value plus swerve"`
	Outcome         int           `json:"outcome" jsonschema:"action result minus defense"`
	Boxcars         bool          `json:"boxcars" jsonschema:"whether the swerve was boxcars"`
	WayAwfulFailure bool          `json:"way_awful_failure" jsonschema:"boxcars on a failed check"`
	Success         bool          `json:"success" jsonschema:"whether the attack hit"`
	Hit             *HitResult    `json:"hit,omitempty" jsonschema:"damage, when the attack hit"`
	Swerve          *SwerveResult `json:"swerve,omitempty" jsonschema:"the mook's own swerve"`
}

// MookResult represents a mook group's attack.
type MookResult struct {
	Success         bool           `json:"success" jsonschema:"whether any mook hit"`
	ChasePoints     int            `json:"chase_points" jsonschema:"summed chase points"`
	ConditionPoints int            `json:"condition_points" jsonschema:"summed condition points"`
	Rolls           []AttackResult `json:"rolls" jsonschema:"each mook's attack in order"`
}

// ChaseResolveResult represents the MCP tool output for a resolved attack.
type ChaseResolveResult struct {
	Method              string         `json:"method" jsonschema:"chase maneuver"`
	Position            string         `json:"position" jsonschema:"position after the attack"`
	Count               int            `json:"count" jsonschema:"mook count used"`
	Stunt               bool           `json:"stunt" jsonschema:"whether the attacker stunted"`
	Success             bool           `json:"success" jsonschema:"whether the attack hit"`
	Summary             string         `json:"summary" jsonschema:"one-line description"`
	ActionValue         int            `json:"action_value" jsonschema:"attacker's action value"`
	Defense             int            `json:"defense" jsonschema:"target's defense"`
	MookDefense         int            `json:"mook_defense" jsonschema:"defense after mook count"`
	ModifiedDefense     string         `json:"modified_defense" jsonschema:"defense as displayed"`
	ModifiedActionValue string         `json:"modified_action_value" jsonschema:"action value as displayed"`
	Swerve              SwerveResult   `json:"swerve" jsonschema:"swerve used"`
	Result              *AttackResult  `json:"result,omitempty" jsonschema:"single attack result"`
	Mooks               *MookResult    `json:"mooks,omitempty" jsonschema:"mook group result"`
	Attacker            map[string]any `json:"attacker" jsonschema:"attacker after the attack"`
	Target              map[string]any `json:"target" jsonschema:"target after the attack"`
	Rng                 RngResult      `json:"rng" jsonschema:"rng details"`
}

// ChaseSwerveInput represents the MCP tool input for a swerve roll.
type ChaseSwerveInput struct {
	Seed        *uint64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic rolls"`
	ActionValue *int    `json:"action_value,omitempty" jsonschema:"judge the swerve with this action value"`
	Defense     int     `json:"defense,omitempty" jsonschema:"defense to judge against"`
	Stunt       bool    `json:"stunt,omitempty" jsonschema:"whether the roll is a stunt"`
	Locale      string  `json:"locale,omitempty" jsonschema:"language for errors"`
}

// OutcomeResult represents a judged swerve.
type OutcomeResult struct {
	Success         bool `json:"success" jsonschema:"whether the check succeeded"`
	ActionResult    int  `json:"action_result" jsonschema:"action value plus swerve"`
	Outcome         int  `json:"outcome" jsonschema:"action result minus defense"`
	WayAwfulFailure bool `json:"way_awful_failure" jsonschema:"boxcars on a failed check"`
}

// ChaseSwerveResult represents the MCP tool output for a swerve roll.
type ChaseSwerveResult struct {
	Result    int            `json:"result" jsonschema:"positive total minus negative total"`
	Boxcars   bool           `json:"boxcars" jsonschema:"whether both dice first came up 6"`
	Positives []int          `json:"positives" jsonschema:"positive die results"`
	Negatives []int          `json:"negatives" jsonschema:"negative die results"`
	Outcome   *OutcomeResult `json:"outcome,omitempty" jsonschema:"judged outcome, when an action value was given"`
	Rng       RngResult      `json:"rng" jsonschema:"rng details"`
}

// ChaseResolveTool defines the MCP tool schema for resolving an attack.
func ChaseResolveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "chase_resolve",
		Description: "Resolves one vehicle chase attack and reports the damage",
	}
}

// ChaseSwerveTool defines the MCP tool schema for swerve rolls.
func ChaseSwerveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "chase_swerve",
		Description: "Rolls a swerve, optionally judging it against a defense",
	}
}

// ChaseResolveHandler resolves an attack through ChaseService.
func ChaseResolveHandler(client ChaseClient) mcp.ToolHandlerFor[ChaseResolveInput, ChaseResolveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChaseResolveInput) (*mcp.CallToolResult, ChaseResolveResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, ChaseResolveResult{}, fmt.Errorf("generate invocation id: %w", err)
		}
		request, err := resolveRequest(input)
		if err != nil {
			return nil, ChaseResolveResult{}, err
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		callCtx, callMeta, err := NewOutgoingContext(runCtx, invocationID)
		if err != nil {
			return nil, ChaseResolveResult{}, fmt.Errorf("create request metadata: %w", err)
		}

		response, err := client.ResolveMap(callCtx, request)
		if err != nil {
			return nil, ChaseResolveResult{}, callError("chase resolve", err)
		}
		var result ChaseResolveResult
		if err := decodeResponse(response, &result); err != nil {
			return nil, ChaseResolveResult{}, err
		}
		result.Rng = rngResult(response)
		return CallToolResultWithMetadata(callMeta), result, nil
	}
}

// ChaseSwerveHandler rolls a swerve through ChaseService.
func ChaseSwerveHandler(client ChaseClient) mcp.ToolHandlerFor[ChaseSwerveInput, ChaseSwerveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChaseSwerveInput) (*mcp.CallToolResult, ChaseSwerveResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, ChaseSwerveResult{}, fmt.Errorf("generate invocation id: %w", err)
		}
		request := map[string]any{}
		setSeed(request, input.Seed)
		setString(request, "locale", input.Locale)
		if input.ActionValue != nil {
			request["action_value"] = *input.ActionValue
			request["defense"] = input.Defense
			request["stunt"] = input.Stunt
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		callCtx, callMeta, err := NewOutgoingContext(runCtx, invocationID)
		if err != nil {
			return nil, ChaseSwerveResult{}, fmt.Errorf("create request metadata: %w", err)
		}

		response, err := client.SwerveMap(callCtx, request)
		if err != nil {
			return nil, ChaseSwerveResult{}, callError("chase swerve", err)
		}
		var result ChaseSwerveResult
		if err := decodeResponse(response, &result); err != nil {
			return nil, ChaseSwerveResult{}, err
		}
		result.Rng = rngResult(response)
		return CallToolResultWithMetadata(callMeta), result, nil
	}
}

func resolveRequest(input ChaseResolveInput) (map[string]any, error) {
	request := map[string]any{}
	if err := setVehicle(request, "attacker", input.Attacker, input.AttackerID); err != nil {
		return nil, err
	}
	if err := setVehicle(request, "target", input.Target, input.TargetID); err != nil {
		return nil, err
	}
	setString(request, "method", strings.ToUpper(strings.TrimSpace(input.Method)))
	setString(request, "position", input.Position)
	setString(request, "typed_swerve", input.TypedSwerve)
	setString(request, "locale", input.Locale)
	setSeed(request, input.Seed)
	for name, value := range map[string]*int{
		"swerve":       input.Swerve,
		"action_value": input.ActionValue,
		"defense":      input.Defense,
		"handling":     input.Handling,
		"squeal":       input.Squeal,
		"frame":        input.Frame,
		"crunch":       input.Crunch,
		"count":        input.Count,
		"impairments":  input.Impairments,
	} {
		if value != nil {
			request[name] = *value
		}
	}
	if input.Boxcars {
		request["boxcars"] = true
	}
	if input.Stunt {
		request["stunt"] = true
	}
	if input.Commit {
		request["commit"] = true
	}
	return request, nil
}

// setVehicle prefers the inline vehicle over the roster id.
func setVehicle(request map[string]any, name string, inline *VehicleInput, id string) error {
	if inline != nil {
		fields, err := toMap(inline)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		request[name] = fields
		return nil
	}
	setString(request, name+"_id", id)
	return nil
}

// setSeed sends the seed as a string so large seeds survive the float64
// encoding of request numbers.
func setSeed(request map[string]any, seed *uint64) {
	if seed != nil {
		request["seed"] = strconv.FormatUint(*seed, 10)
	}
}

func setString(request map[string]any, name, value string) {
	if value = strings.TrimSpace(value); value != "" {
		request[name] = value
	}
}

func rngResult(response map[string]any) RngResult {
	read := func(key string) string {
		value, _ := response[key].(string)
		return value
	}
	return RngResult{
		SeedUsed:   read("seed_used"),
		RngAlgo:    read("rng_algo"),
		SeedSource: read("seed_source"),
	}
}

// callError surfaces the localized message ChaseService attached, if any.
func callError(call string, err error) error {
	if _, ok := status.FromError(err); ok {
		return fmt.Errorf("%s failed: %s", call, apperrors.LocalizedMessage(err))
	}
	return fmt.Errorf("%s failed: %w", call, err)
}

func toMap(value any) (map[string]any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeResponse(response map[string]any, target any) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
