package chase

import (
	"encoding/json"
	"strconv"

	chasedomain "github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// seedFields reports the seed as a string so it survives float64 encoding.
func seedFields(out map[string]any, seed int64, source string) {
	out["seed_used"] = strconv.FormatInt(seed, 10)
	out["seed_source"] = source
	out["rng_algo"] = rngAlgo
}

func resolveFields(c chasedomain.Context, line string) (map[string]any, error) {
	attacker, err := vehicleFields(c.Attacker)
	if err != nil {
		return nil, err
	}
	target, err := vehicleFields(c.Target)
	if err != nil {
		return nil, err
	}
	out := map[string]any{
		"attacker":              attacker,
		"target":                target,
		"method":                string(c.Method),
		"position":              string(c.Position),
		"count":                 c.Count,
		"stunt":                 c.Stunt,
		"impairments":           c.Impairments,
		"swerve":                swerveFields(c.Swerve),
		"action_value":          c.ActionValue,
		"defense":               c.Defense,
		"mook_defense":          c.MookDefense,
		"modified_defense":      c.ModifiedDefense,
		"modified_action_value": c.ModifiedActionValue,
		"success":               c.Success(),
		"summary":               line,
	}
	if c.Result != nil {
		out["result"] = resultFields(*c.Result)
	}
	if c.Mooks != nil {
		rolls := make([]any, 0, len(c.Mooks.Rolls))
		for _, roll := range c.Mooks.Rolls {
			fields := resultFields(roll.Result)
			fields["swerve"] = swerveFields(roll.Swerve)
			rolls = append(rolls, fields)
		}
		out["mooks"] = map[string]any{
			"success":          c.Mooks.Success,
			"chase_points":     c.Mooks.ChasePoints,
			"condition_points": c.Mooks.ConditionPoints,
			"rolls":            rolls,
		}
	}
	return out, nil
}

func resultFields(r chasedomain.Result) map[string]any {
	out := map[string]any{
		"action_result":     r.ActionResult,
		"outcome":           r.Outcome,
		"boxcars":           r.Boxcars,
		"way_awful_failure": r.WayAwfulFailure,
		"success":           r.Success(),
	}
	if r.Hit != nil {
		hit := map[string]any{
			"smackdown":    r.Hit.Smackdown,
			"chase_points": r.Hit.ChasePoints,
		}
		if r.Hit.ConditionPoints != nil {
			hit["condition_points"] = *r.Hit.ConditionPoints
		}
		out["hit"] = hit
	}
	return out
}

func swerveFields(s swerve.Swerve) map[string]any {
	return map[string]any{
		"result":    s.Result,
		"boxcars":   s.Boxcars,
		"positives": intList(s.Positives),
		"negatives": intList(s.Negatives),
	}
}

func outcomeFields(o swerve.Outcome) map[string]any {
	return map[string]any{
		"success":           o.Success,
		"action_result":     o.ActionResult,
		"outcome":           o.Outcome,
		"way_awful_failure": o.WayAwfulFailure,
	}
}

// vehicleFields flattens v through JSON so every value is Struct-safe.
func vehicleFields(v vehicle.Vehicle) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func intList(values []int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
