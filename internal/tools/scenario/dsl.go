package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a parsed chase script.
type Scenario struct {
	Name  string
	Steps []Step
	// Dir resolves relative roster paths; empty means the working directory.
	Dir string
}

// Step is one scenario instruction.
type Step struct {
	Kind string
	Args map[string]any
}

// LoadScenarioFromFile runs a Lua scenario file and returns the Scenario it
// builds. Unnamed scenarios take the file's base name.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	scenario, err := runChunk(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	scenario.Dir = filepath.Dir(path)
	return scenario, nil
}

// LoadScenario runs Lua source and returns the Scenario it builds.
func LoadScenario(source string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadString(state, source); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	return runChunk(state)
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerScenarioType(state)
	registerScenarioConstructor(state)
	return state
}

func runChunk(state *lua.State) (*Scenario, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	return scenario, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	scenario := &Scenario{Name: lua.OptString(state, 1, "")}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "vehicle", Function: scenarioVehicle},
	{Name: "roster", Function: scenarioRoster},
	{Name: "attack", Function: scenarioAttack},
	{Name: "mook_attack", Function: scenarioMookAttack},
	{Name: "expect", Function: scenarioExpect},
	{Name: "expect_vehicle", Function: scenarioExpectVehicle},
}

// scenario:vehicle("cruiser", {name = "Police Cruiser", driving = 15, pursuer = true})
func scenarioVehicle(state *lua.State) int {
	scenario := checkScenario(state)
	id := lua.CheckString(state, 2)
	data := optionalTable(state, 3)
	data["id"] = id
	appendStep(scenario, "vehicle", data)
	return 0
}

// scenario:roster("vehicles.yaml")
func scenarioRoster(state *lua.State) int {
	scenario := checkScenario(state)
	path := lua.CheckString(state, 2)
	appendStep(scenario, "roster", map[string]any{"path": path})
	return 0
}

// scenario:attack({attacker = "cruiser", target = "getaway", swerve = 6})
func scenarioAttack(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "attack", requireParticipants(state, tableToMap(state, 2)))
	return 0
}

// scenario:mook_attack({attacker = "bikers", target = "getaway", swerves = {6, -3}})
func scenarioMookAttack(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "mook_attack", requireParticipants(state, tableToMap(state, 2)))
	return 0
}

// scenario:expect({hit = true, chase_points = 10, position = "near"})
func scenarioExpect(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "expect", tableToMap(state, 2))
	return 0
}

// scenario:expect_vehicle("getaway", {chase_points = 13})
func scenarioExpectVehicle(state *lua.State) int {
	scenario := checkScenario(state)
	id := lua.CheckString(state, 2)
	lua.CheckType(state, 3, lua.TypeTable)
	data := tableToMap(state, 3)
	data["id"] = id
	appendStep(scenario, "expect_vehicle", data)
	return 0
}

func requireParticipants(state *lua.State, data map[string]any) map[string]any {
	for _, key := range []string{"attacker", "target"} {
		if value, _ := data[key].(string); strings.TrimSpace(value) == "" {
			lua.ArgumentError(state, 2, key+" is required")
		}
	}
	return data
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) {
	if scenario == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
}
