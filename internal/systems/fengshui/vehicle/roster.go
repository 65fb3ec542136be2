package vehicle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingID is returned for a roster entry without an id.
	ErrMissingID = errors.New("vehicle id is required")
	// ErrDuplicateID is returned when two roster entries share an id.
	ErrDuplicateID = errors.New("duplicate vehicle id")
	// ErrCountOutOfRange is returned for a headcount outside 0..MaxCount.
	ErrCountOutOfRange = errors.New("vehicle count out of range")
)

// Roster is a named set of vehicles loaded from a YAML document:
//
//	vehicles:
//	  - id: cruiser
//	    name: Police Cruiser
//	    type: Featured Foe
//	    action_values:
//	      Driving: 13
//	      Handling: 6
//	      Pursuer: true
//
// A Roster is safe for concurrent use.
type Roster struct {
	mu       sync.RWMutex
	order    []string
	vehicles map[string]Vehicle
}

type rosterFile struct {
	Vehicles []Vehicle `yaml:"vehicles"`
}

// NewRoster builds a roster from vehicles, keeping their order.
func NewRoster(vehicles ...Vehicle) (*Roster, error) {
	roster := &Roster{vehicles: make(map[string]Vehicle, len(vehicles))}
	for i, v := range vehicles {
		id := strings.TrimSpace(v.ID)
		if id == "" {
			return nil, fmt.Errorf("vehicle %d: %w", i, ErrMissingID)
		}
		if _, ok := roster.vehicles[id]; ok {
			return nil, fmt.Errorf("vehicle %q: %w", id, ErrDuplicateID)
		}
		if !ValidCount(v.Count) {
			return nil, fmt.Errorf("vehicle %q: %w", id, ErrCountOutOfRange)
		}
		v.ID = id
		roster.order = append(roster.order, id)
		roster.vehicles[id] = v.Clone()
	}
	return roster, nil
}

// LoadRoster decodes a YAML roster.
func LoadRoster(r io.Reader) (*Roster, error) {
	var file rosterFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return NewRoster(file.Vehicles...)
}

// LoadRosterFile reads a YAML roster from path.
func LoadRosterFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return LoadRoster(f)
}

// Get returns a copy of the vehicle with id.
func (r *Roster) Get(id string) (Vehicle, bool) {
	if r == nil {
		return Vehicle{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[strings.TrimSpace(id)]
	if !ok {
		return Vehicle{}, false
	}
	return v.Clone(), true
}

// Put adds or replaces a vehicle.
func (r *Roster) Put(v Vehicle) error {
	id := strings.TrimSpace(v.ID)
	if id == "" {
		return ErrMissingID
	}
	if !ValidCount(v.Count) {
		return fmt.Errorf("vehicle %q: %w", id, ErrCountOutOfRange)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vehicles == nil {
		r.vehicles = map[string]Vehicle{}
	}
	if _, ok := r.vehicles[id]; !ok {
		r.order = append(r.order, id)
	}
	v.ID = id
	r.vehicles[id] = v.Clone()
	return nil
}

// All returns copies of every vehicle in roster order.
func (r *Roster) All() []Vehicle {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Vehicle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.vehicles[id].Clone())
	}
	return out
}

// Len returns the number of vehicles.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
