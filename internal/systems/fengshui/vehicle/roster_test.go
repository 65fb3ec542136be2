package vehicle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const rosterYAML = `
vehicles:
  - id: cruiser
    name: Police Cruiser
    type: Featured Foe
    action_values:
      Driving: 13
      Handling: 6
      Squeal: 8
      Pursuer: true
      Position: far
  - id: bikers
    name: Biker Gang
    type: Mook
    count: 6
    action_values:
      Driving: 8
      Handling: "5"
`

func TestLoadRoster(t *testing.T) {
	roster, err := LoadRoster(strings.NewReader(rosterYAML))
	if err != nil {
		t.Fatalf("LoadRoster returned error: %v", err)
	}
	if roster.Len() != 2 {
		t.Fatalf("len = %d, want 2", roster.Len())
	}

	s := NewService()
	cruiser, ok := roster.Get("cruiser")
	if !ok {
		t.Fatal("expected cruiser in roster")
	}
	if s.Driving(cruiser) != 13 || !s.IsPursuer(cruiser) || !s.IsFar(cruiser) {
		t.Fatalf("unexpected cruiser: %+v", cruiser)
	}
	bikers, _ := roster.Get("bikers")
	if !s.IsMook(bikers) || bikers.Count != 6 || s.Handling(bikers) != 5 {
		t.Fatalf("unexpected bikers: %+v", bikers)
	}

	all := roster.All()
	if all[0].ID != "cruiser" || all[1].ID != "bikers" {
		t.Fatalf("order = %s, %s", all[0].ID, all[1].ID)
	}
}

func TestLoadRosterErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"missing id", "vehicles:\n  - name: Nobody\n", ErrMissingID},
		{"duplicate id", "vehicles:\n  - id: a\n  - id: a\n", ErrDuplicateID},
		{"negative count", "vehicles:\n  - id: a\n    count: -1\n", ErrCountOutOfRange},
		{"huge count", "vehicles:\n  - id: a\n    count: 1125899906842624\n", ErrCountOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRoster(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadRoster(strings.NewReader("vehicles:\n  - id: a\n    wheels: 4\n")); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadRosterEmptyDocument(t *testing.T) {
	roster, err := LoadRoster(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadRoster returned error: %v", err)
	}
	if roster.Len() != 0 {
		t.Fatalf("len = %d, want 0", roster.Len())
	}
}

func TestLoadRosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(rosterYAML), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	roster, err := LoadRosterFile(path)
	if err != nil {
		t.Fatalf("LoadRosterFile returned error: %v", err)
	}
	if roster.Len() != 2 {
		t.Fatalf("len = %d, want 2", roster.Len())
	}
	if _, err := LoadRosterFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRosterPutRejectsHugeCount(t *testing.T) {
	roster, err := NewRoster()
	if err != nil {
		t.Fatalf("NewRoster returned error: %v", err)
	}
	horde := mooks(MaxCount + 1)
	horde.ID = "horde"
	if err := roster.Put(horde); !errors.Is(err, ErrCountOutOfRange) {
		t.Fatalf("Put error = %v, want %v", err, ErrCountOutOfRange)
	}
	if roster.Len() != 0 {
		t.Fatalf("len = %d, want 0", roster.Len())
	}

	horde.Count = MaxCount
	if err := roster.Put(horde); err != nil {
		t.Fatalf("Put at the limit returned error: %v", err)
	}
}

func TestRosterGetReturnsCopies(t *testing.T) {
	roster, err := NewRoster(cruiser())
	if err != nil {
		t.Fatalf("NewRoster returned error: %v", err)
	}
	v, _ := roster.Get("cruiser")
	v.ActionValues[KeyChasePoints] = 30
	again, _ := roster.Get("cruiser")
	if NewService().ChasePoints(again) != 0 {
		t.Fatal("roster entry was modified through a returned copy")
	}
	if err := roster.Put(Vehicle{}); !errors.Is(err, ErrMissingID) {
		t.Fatalf("Put error = %v, want %v", err, ErrMissingID)
	}
}
