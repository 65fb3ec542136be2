package vehicle

import "testing"

func cruiser() Vehicle {
	return Vehicle{
		ID:   "cruiser",
		Name: "Police Cruiser",
		Type: TypeFeaturedFoe,
		ActionValues: ActionValues{
			KeyDriving:         13,
			KeyHandling:        6,
			KeySqueal:          8,
			KeyFrame:           9,
			KeyCrunch:          11,
			KeyChasePoints:     0,
			KeyConditionPoints: 0,
			KeyPursuer:         "true",
			KeyPosition:        "far",
		},
	}
}

func getaway() Vehicle {
	return Vehicle{
		ID:   "getaway",
		Name: "Getaway Car",
		Type: TypePC,
		ActionValues: ActionValues{
			KeyDriving:         "15",
			KeyHandling:        7,
			KeySqueal:          10,
			KeyFrame:           6,
			KeyCrunch:          7,
			KeyChasePoints:     4,
			KeyConditionPoints: 2,
			KeyPursuer:         false,
			KeyPosition:        "near",
		},
	}
}

func mooks(count int) Vehicle {
	return Vehicle{
		ID:    "bikers",
		Name:  "Biker Gang",
		Type:  TypeMook,
		Count: count,
		ActionValues: ActionValues{
			KeyDriving:  8,
			KeyHandling: 5,
			KeyFrame:    4,
			KeyPursuer:  true,
		},
	}
}

func TestAccessors(t *testing.T) {
	s := NewService()
	c := cruiser()
	g := getaway()

	if got := s.Driving(g); got != 15 {
		t.Fatalf("Driving = %d, want 15", got)
	}
	if got := s.Handling(c); got != 6 {
		t.Fatalf("Handling = %d, want 6", got)
	}
	if !s.IsPursuer(c) || s.IsEvader(c) {
		t.Fatal("expected cruiser to be a pursuer")
	}
	if s.IsPursuer(g) || !s.IsEvader(g) {
		t.Fatal("expected getaway car to be an evader")
	}
	if !s.IsFar(c) || !s.IsNear(g) {
		t.Fatal("unexpected positions")
	}
	if s.Position(Vehicle{}) != Far {
		t.Fatal("expected missing position to default to far")
	}
	if !s.IsMook(mooks(3)) || s.Mooks(mooks(3)) != 3 {
		t.Fatal("expected mook group of three")
	}
}

func TestMutatorsDoNotModifyInputs(t *testing.T) {
	s := NewService()
	c := cruiser()
	g := getaway()

	_, _ = s.NarrowTheGap(c, 20, g)
	_ = s.TakeRawChasePoints(g, 5)
	_ = s.UpdatePosition(c, Near)

	if s.ChasePoints(g) != 4 {
		t.Fatalf("input target mutated: chase points = %d", s.ChasePoints(g))
	}
	if !s.IsFar(c) {
		t.Fatal("input attacker mutated: position changed")
	}
}

func TestRamSideswipe(t *testing.T) {
	s := NewService()
	attacker, target := s.RamSideswipe(cruiser(), 19, getaway())

	// 19 - Frame 6 = 13 on top of 4 chase / 2 condition.
	if got := s.ChasePoints(target); got != 17 {
		t.Fatalf("target chase points = %d, want 17", got)
	}
	if got := s.ConditionPoints(target); got != 15 {
		t.Fatalf("target condition points = %d, want 15", got)
	}
	if got := s.ConditionPoints(attacker); got != 3 {
		t.Fatalf("attacker condition points = %d, want 3", got)
	}
	if !s.IsFar(attacker) || !s.IsNear(target) {
		t.Fatal("ram should not move either vehicle")
	}
}

func TestChaseMethods(t *testing.T) {
	s := NewService()
	tests := []struct {
		name           string
		apply          func(Vehicle, int, Vehicle) (Vehicle, Vehicle)
		damage         int
		wantChase      int
		wantPosition   Position
		targetPosition Position
	}{
		{"narrow the gap", s.NarrowTheGap, 16, 4 + 9, Near, Near},
		{"widen the gap", s.WidenTheGap, 16, 4 + 9, Far, Far},
		{"evade", s.Evade, 16, 4 + 9, Far, Near},
		{"damage below handling", s.Evade, 5, 4, Far, Near},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attacker, target := tt.apply(cruiser(), tt.damage, getaway())
			if got := s.ChasePoints(target); got != tt.wantChase {
				t.Fatalf("chase points = %d, want %d", got, tt.wantChase)
			}
			if got := s.Position(attacker); got != tt.wantPosition {
				t.Fatalf("attacker position = %q, want %q", got, tt.wantPosition)
			}
			if got := s.Position(target); got != tt.targetPosition {
				t.Fatalf("target position = %q, want %q", got, tt.targetPosition)
			}
			if s.ConditionPoints(target) != 2 {
				t.Fatalf("condition points changed to %d", s.ConditionPoints(target))
			}
		})
	}
}

func TestMookTargetsLoseHeadcount(t *testing.T) {
	s := NewService()
	_, target := s.Evade(getaway(), 2, mooks(5))
	if target.Count != 3 {
		t.Fatalf("count = %d, want 3", target.Count)
	}
	_, target = s.RamSideswipe(getaway(), 9, mooks(5))
	if target.Count != 0 {
		t.Fatalf("count = %d, want 0", target.Count)
	}
	if s.ChasePoints(target) != 0 {
		t.Fatal("mook groups do not take chase points")
	}
}

func TestRawPoints(t *testing.T) {
	s := NewService()
	g := s.TakeRawChasePoints(getaway(), 15)
	g = s.TakeRawConditionPoints(g, 3)
	g = s.TakeRawChasePoints(g, -2)
	if s.ChasePoints(g) != 19 || s.ConditionPoints(g) != 5 {
		t.Fatalf("points = %d/%d, want 19/5", s.ChasePoints(g), s.ConditionPoints(g))
	}
	if got := s.KillMooks(mooks(2), -1).Count; got != 2 {
		t.Fatalf("negative kill changed count to %d", got)
	}
}
