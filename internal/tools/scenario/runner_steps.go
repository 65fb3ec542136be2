package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/progressions/shot-client-next-sub002/internal/core/number"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase/summary"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

func (r *Runner) runStep(state *scenarioState, step Step) error {
	switch step.Kind {
	case "vehicle":
		return r.runVehicleStep(state, step.Args)
	case "roster":
		return r.runRosterStep(state, step.Args)
	case "attack", "mook_attack":
		return r.runAttackStep(state, step.Args)
	case "expect":
		return r.runExpectStep(state, step.Args)
	case "expect_vehicle":
		return r.runExpectVehicleStep(state, step.Args)
	default:
		return r.failf("unknown step kind %q", step.Kind)
	}
}

// Scenario keys for vehicle action values.
var vehicleValueKeys = map[string]string{
	"driving":          vehicle.KeyDriving,
	"handling":         vehicle.KeyHandling,
	"squeal":           vehicle.KeySqueal,
	"frame":            vehicle.KeyFrame,
	"crunch":           vehicle.KeyCrunch,
	"chase_points":     vehicle.KeyChasePoints,
	"condition_points": vehicle.KeyConditionPoints,
}

func (r *Runner) runVehicleStep(state *scenarioState, args map[string]any) error {
	id := readString(args, "id")
	if id == "" {
		return r.failf("vehicle id is required")
	}
	v := vehicle.Vehicle{
		ID:           id,
		Name:         optionalString(args, "name", id),
		Type:         vehicle.Type(optionalString(args, "type", string(vehicle.TypeFeaturedFoe))),
		ActionValues: vehicle.ActionValues{},
		Impairments:  number.Int(args["impairments"]),
		Count:        number.Int(args["count"]),
	}
	if !vehicle.ValidCount(v.Count) {
		return r.failf("vehicle %s: count %d out of range", id, v.Count)
	}
	for key, actionKey := range vehicleValueKeys {
		if value, ok := args[key]; ok {
			v.ActionValues[actionKey] = number.Int(value)
		}
	}
	if pursuer, ok := args["pursuer"]; ok {
		v.ActionValues[vehicle.KeyPursuer] = number.Bool(pursuer)
	}
	if position := readString(args, "position"); position != "" {
		parsed, err := parsePosition(position)
		if err != nil {
			return r.failf("vehicle %s: %v", id, err)
		}
		v.ActionValues[vehicle.KeyPosition] = string(parsed)
	}
	state.vehicles[id] = v
	return nil
}

func (r *Runner) runRosterStep(state *scenarioState, args map[string]any) error {
	path := readString(args, "path")
	if path == "" {
		return r.failf("roster path is required")
	}
	roster, err := vehicle.LoadRosterFile(state.path(path))
	if err != nil {
		return r.failf("load roster %s: %v", path, err)
	}
	for _, v := range roster.All() {
		state.vehicles[v.ID] = v
	}
	return nil
}

// Attack keys that override values loaded from the vehicles.
var attackOverrides = map[string]func(*chase.Context, int){
	"action_value": func(c *chase.Context, v int) { c.ActionValue = v },
	"defense":      func(c *chase.Context, v int) { c.Defense = v },
	"handling":     func(c *chase.Context, v int) { c.Handling = v },
	"squeal":       func(c *chase.Context, v int) { c.Squeal = v },
	"frame":        func(c *chase.Context, v int) { c.Frame = v },
	"crunch":       func(c *chase.Context, v int) { c.Crunch = v },
	"count":        func(c *chase.Context, v int) { c.Count = v },
	"impairments":  func(c *chase.Context, v int) { c.Impairments = v },
}

func (r *Runner) runAttackStep(state *scenarioState, args map[string]any) error {
	attackerID := readString(args, "attacker")
	targetID := readString(args, "target")
	attacker, ok := state.vehicles[attackerID]
	if !ok {
		return r.failf("unknown attacker %q", attackerID)
	}
	target, ok := state.vehicles[targetID]
	if !ok {
		return r.failf("unknown target %q", targetID)
	}
	if attackerID == targetID {
		return r.failf("vehicle %q cannot attack itself", attackerID)
	}

	scripted, err := scriptedSwerves(args)
	if err != nil {
		return r.failf("attack: %v", err)
	}
	oracle := swerve.NewScript(state.roller)
	engine := chase.NewEngine(oracle, state.service)
	ctx := engine.SetAttacker(chase.Context{}, attacker)
	ctx = engine.SetTarget(ctx, target)
	for key, set := range attackOverrides {
		if value, ok := args[key]; ok {
			set(&ctx, number.Int(value))
		}
	}
	if !vehicle.ValidCount(ctx.Count) {
		return r.failf("attack: count %d out of range", ctx.Count)
	}
	if method := readString(args, "method"); method != "" {
		m := chase.Method(strings.ToUpper(method))
		if !m.Valid() {
			return r.failf("unknown method %q", method)
		}
		ctx.Method = m
	}
	if position := readString(args, "position"); position != "" {
		parsed, err := parsePosition(position)
		if err != nil {
			return r.failf("attack: %v", err)
		}
		ctx.Position = parsed
	}
	ctx.Stunt = number.Bool(args["stunt"])
	ctx.TypedSwerve = readString(args, "typed_swerve")

	switch {
	case state.service.IsMook(attacker):
		oracle.Push(scripted...)
	case len(scripted) > 0:
		ctx.Swerve = scripted[0]
	case ctx.TypedSwerve == "":
		ctx.Swerve = oracle.Swerve()
	}
	if _, ok := args["boxcars"]; ok {
		ctx.Swerve.Boxcars = number.Bool(args["boxcars"])
	}

	ctx.Edited = true
	ctx = engine.Process(ctx)
	if leftover := oracle.Remaining(); leftover > 0 {
		r.logf("%d scripted swerves unused", leftover)
	}

	state.vehicles[attackerID] = ctx.Attacker
	state.vehicles[targetID] = ctx.Target
	state.last = &ctx
	r.logf("%s", summary.Line(ctx, r.locale))
	return nil
}

// scriptedSwerves reads "swerve" or the "swerves" list.
func scriptedSwerves(args map[string]any) ([]swerve.Swerve, error) {
	if value, ok := args["swerve"]; ok {
		return []swerve.Swerve{{Result: number.Int(value)}}, nil
	}
	raw, ok := args["swerves"]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("swerves must be a list")
	}
	out := make([]swerve.Swerve, 0, len(list))
	for _, item := range list {
		out = append(out, swerve.Swerve{Result: number.Int(item)})
	}
	return out, nil
}

// attackChecks read a value from the last attack. A false ok means the
// attack produced no such value.
var attackChecks = map[string]func(chase.Context) (any, bool){
	"hit":     func(c chase.Context) (any, bool) { return c.Success(), true },
	"success": func(c chase.Context) (any, bool) { return c.Success(), true },
	"method":  func(c chase.Context) (any, bool) { return string(c.Method), true },
	"position": func(c chase.Context) (any, bool) {
		return string(c.Position), true
	},
	"count":                 func(c chase.Context) (any, bool) { return c.Count, true },
	"impairments":           func(c chase.Context) (any, bool) { return c.Impairments, true },
	"defense":               func(c chase.Context) (any, bool) { return c.Defense, true },
	"action_value":          func(c chase.Context) (any, bool) { return c.ActionValue, true },
	"mook_defense":          func(c chase.Context) (any, bool) { return c.MookDefense, true },
	"modified_defense":      func(c chase.Context) (any, bool) { return c.ModifiedDefense, true },
	"modified_action_value": func(c chase.Context) (any, bool) { return c.ModifiedActionValue, true },
	"action_result": func(c chase.Context) (any, bool) {
		if c.Result == nil {
			return nil, false
		}
		return c.Result.ActionResult, true
	},
	"outcome": func(c chase.Context) (any, bool) {
		if c.Result == nil {
			return nil, false
		}
		return c.Result.Outcome, true
	},
	"boxcars": func(c chase.Context) (any, bool) {
		if c.Result == nil {
			return nil, false
		}
		return c.Result.Boxcars, true
	},
	"way_awful": func(c chase.Context) (any, bool) {
		if c.Result == nil {
			return nil, false
		}
		return c.Result.WayAwfulFailure, true
	},
	"smackdown": func(c chase.Context) (any, bool) {
		if c.Result == nil || c.Result.Hit == nil {
			return 0, true
		}
		return c.Result.Hit.Smackdown, true
	},
	"chase_points": func(c chase.Context) (any, bool) {
		if c.Mooks != nil {
			return c.Mooks.ChasePoints, true
		}
		if c.Result == nil || c.Result.Hit == nil {
			return 0, true
		}
		return c.Result.Hit.ChasePoints, true
	},
	"condition_points": func(c chase.Context) (any, bool) {
		if c.Mooks != nil {
			return c.Mooks.ConditionPoints, true
		}
		if c.Result == nil || c.Result.Hit == nil || c.Result.Hit.ConditionPoints == nil {
			return 0, true
		}
		return *c.Result.Hit.ConditionPoints, true
	},
	"mook_hits": func(c chase.Context) (any, bool) {
		if c.Mooks == nil {
			return nil, false
		}
		hits := 0
		for _, roll := range c.Mooks.Rolls {
			if roll.Hit != nil {
				hits++
			}
		}
		return hits, true
	},
}

func (r *Runner) runExpectStep(state *scenarioState, args map[string]any) error {
	if state.last == nil {
		return r.failf("expect before any attack")
	}
	for _, key := range sortedKeys(args) {
		want := args[key]
		if key == "summary" {
			got := summary.Line(*state.last, r.locale)
			if got != fmt.Sprint(want) {
				if err := r.assertf("summary = %q, want %q", got, want); err != nil {
					return err
				}
			}
			continue
		}
		read, ok := attackChecks[key]
		if !ok {
			return r.failf("unknown expectation %q", key)
		}
		got, ok := read(*state.last)
		if !ok {
			if err := r.assertf("%s: attack has no such value", key); err != nil {
				return err
			}
			continue
		}
		if !sameValue(got, want) {
			if err := r.assertf("%s = %v, want %v", key, got, want); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) runExpectVehicleStep(state *scenarioState, args map[string]any) error {
	id := readString(args, "id")
	v, ok := state.vehicles[id]
	if !ok {
		return r.failf("unknown vehicle %q", id)
	}
	service := state.service
	checks := map[string]any{
		"chase_points":     service.ChasePoints(v),
		"condition_points": service.ConditionPoints(v),
		"position":         string(service.Position(v)),
		"count":            service.Mooks(v),
		"pursuer":          service.IsPursuer(v),
	}
	for _, key := range sortedKeys(args) {
		if key == "id" {
			continue
		}
		got, ok := checks[key]
		if !ok {
			return r.failf("unknown vehicle expectation %q", key)
		}
		if !sameValue(got, args[key]) {
			if err := r.assertf("vehicle %s %s = %v, want %v", id, key, got, args[key]); err != nil {
				return err
			}
		}
	}
	return nil
}

func sameValue(got, want any) bool {
	switch g := got.(type) {
	case int:
		w, ok := want.(int)
		return ok && g == w
	case bool:
		w, ok := want.(bool)
		return ok && g == w
	case string:
		return strings.EqualFold(g, fmt.Sprint(want))
	default:
		return fmt.Sprint(got) == fmt.Sprint(want)
	}
}

func parsePosition(value string) (chase.Position, error) {
	switch chase.Position(strings.ToLower(strings.TrimSpace(value))) {
	case chase.Near:
		return chase.Near, nil
	case chase.Far:
		return chase.Far, nil
	default:
		return "", fmt.Errorf("unknown position %q", value)
	}
}

func readString(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return strings.TrimSpace(value)
}

func optionalString(args map[string]any, key, fallback string) string {
	if value := readString(args, key); value != "" {
		return value
	}
	return fallback
}

func sortedKeys(args map[string]any) []string {
	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
