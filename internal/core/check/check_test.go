package check

import "testing"

func TestMeetsDefense(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		defense int
		want    bool
	}{
		{"exact match", 13, 13, true},
		{"above defense", 21, 13, true},
		{"below defense", 9, 13, false},
		{"zero total zero defense", 0, 0, true},
		{"negative total", -5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsDefense(tt.total, tt.defense); got != tt.want {
				t.Errorf("MeetsDefense(%d, %d) = %v, want %v", tt.total, tt.defense, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		actionValue int
		swerve      int
		defense     int
		want        Result
	}{
		{"hit with margin", 15, 6, 13, Result{ActionResult: 21, Outcome: 8, Success: true}},
		{"exact hit", 15, -2, 13, Result{ActionResult: 13, Outcome: 0, Success: true}},
		{"miss", 15, -6, 13, Result{ActionResult: 9, Outcome: -4, Success: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.actionValue, tt.swerve, tt.defense)
			if got != tt.want {
				t.Errorf("Resolve(%d, %d, %d) = %+v, want %+v", tt.actionValue, tt.swerve, tt.defense, got, tt.want)
			}
		})
	}
}
