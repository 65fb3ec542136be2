package summary

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"en-US", language.English},
		{"pt-BR", language.BrazilianPortuguese},
		{"pt", language.BrazilianPortuguese},
		{"pt-BR,pt;q=0.9,en;q=0.8", language.BrazilianPortuguese},
		{"not a locale!!", language.English},
	}
	for _, tt := range tests {
		if got := Match(tt.locale); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.locale, got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	cruiser := vehicle.Vehicle{ID: "cruiser", Name: "Police Cruiser"}
	getaway := vehicle.Vehicle{ID: "getaway"}
	condition := 10

	tests := []struct {
		name   string
		ctx    chase.Context
		locale string
		want   string
	}{
		{
			name: "narrow hit",
			ctx: chase.Context{
				Attacker: cruiser, Target: getaway, Method: chase.NarrowTheGap,
				Result: &chase.Result{ActionResult: 21, Outcome: 8, Hit: &chase.Hit{Smackdown: 16, ChasePoints: 10}},
			},
			want: "Police Cruiser narrows the gap on getaway for 10 chase points (smackdown 16).",
		},
		{
			name: "ram hit in portuguese",
			ctx: chase.Context{
				Attacker: cruiser, Target: getaway, Method: chase.RamSideswipe,
				Result: &chase.Result{Hit: &chase.Hit{Smackdown: 19, ChasePoints: 10, ConditionPoints: &condition}},
			},
			locale: "pt-BR",
			want:   "Police Cruiser abalroa getaway: 10 pontos de perseguição e 10 de condição (smackdown 19).",
		},
		{
			name: "miss",
			ctx: chase.Context{
				Attacker: cruiser, Target: getaway, ModifiedDefense: "15*",
				Result: &chase.Result{ActionResult: 9, Outcome: -6},
			},
			want: "Police Cruiser misses getaway (9 vs 15*).",
		},
		{
			name: "way-awful failure",
			ctx: chase.Context{
				Attacker: cruiser, Target: getaway, ModifiedDefense: "13",
				Result: &chase.Result{ActionResult: 10, Outcome: -3, Boxcars: true, WayAwfulFailure: true},
			},
			want: "Police Cruiser suffers a way-awful failure against getaway (10 vs 13).",
		},
		{
			name: "mooks killed",
			ctx: chase.Context{
				Attacker: cruiser, Target: vehicle.Vehicle{Name: "Bikers", Type: vehicle.TypeMook}, Count: 3,
				Result: &chase.Result{Hit: &chase.Hit{Smackdown: 12}},
			},
			want: "Police Cruiser takes out 3 of Bikers.",
		},
		{
			name: "mook attack",
			ctx: chase.Context{
				Attacker: vehicle.Vehicle{Name: "Bikers"}, Target: getaway, Method: chase.NarrowTheGap,
				Mooks: &chase.MookAttacks{
					Success:     true,
					ChasePoints: 5,
					Rolls: []chase.MookRoll{
						{Swerve: swerve.Swerve{Result: -3}, Result: chase.Result{}},
						{Swerve: swerve.Swerve{Result: 6}, Result: chase.Result{Hit: &chase.Hit{Smackdown: 10, ChasePoints: 5}}},
					},
				},
			},
			want: "1 of 2 from Bikers hit getaway for 5 chase points.",
		},
		{
			name: "mooks all miss in portuguese",
			ctx: chase.Context{
				Attacker: vehicle.Vehicle{Name: "Bikers"}, Target: getaway,
				Mooks: &chase.MookAttacks{Rolls: []chase.MookRoll{{}}},
			},
			locale: "pt-BR",
			want:   "Bikers erram todos contra getaway.",
		},
		{
			name: "unresolved",
			ctx:  chase.Context{Attacker: cruiser, Target: getaway},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.ctx, tt.locale); got != tt.want {
				t.Fatalf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}
