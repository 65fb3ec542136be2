// Package summary renders a resolved chase attack as one localized line.
package summary

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// Message keys double as the English format strings.
const (
	msgMiss         = "%s misses %s (%d vs %s)."
	msgWayAwful     = "%s suffers a way-awful failure against %s (%d vs %s)."
	msgRam          = "%s rams %s for %d chase and %d condition points (smackdown %d)."
	msgNarrow       = "%s narrows the gap on %s for %d chase points (smackdown %d)."
	msgWiden        = "%s widens the gap from %s for %d chase points (smackdown %d)."
	msgEvade        = "%s evades %s for %d chase points (smackdown %d)."
	msgKillMooks    = "%s takes out %d of %s."
	msgMooksHit     = "%d of %d from %s hit %s for %d chase points."
	msgMooksRamHit  = "%d of %d from %s hit %s for %d chase and %d condition points."
	msgMooksAllMiss = "%s all miss %s."
)

var supportedTags = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var tagMatcher = language.NewMatcher(supportedTags)

func init() {
	pt := language.BrazilianPortuguese
	for key, text := range map[string]string{
		msgMiss:         "%s erra %s (%d contra %s).",
		msgWayAwful:     "%s sofre uma falha terrível contra %s (%d contra %s).",
		msgRam:          "%s abalroa %s: %d pontos de perseguição e %d de condição (smackdown %d).",
		msgNarrow:       "%s se aproxima de %s: %d pontos de perseguição (smackdown %d).",
		msgWiden:        "%s se afasta de %s: %d pontos de perseguição (smackdown %d).",
		msgEvade:        "%s escapa de %s: %d pontos de perseguição (smackdown %d).",
		msgKillMooks:    "%s derruba %d de %s.",
		msgMooksHit:     "%d de %d de %s acertam %s: %d pontos de perseguição.",
		msgMooksRamHit:  "%d de %d de %s acertam %s: %d pontos de perseguição e %d de condição.",
		msgMooksAllMiss: "%s erram todos contra %s.",
	} {
		if err := message.SetString(pt, key, text); err != nil {
			panic(err)
		}
	}
}

// Supported returns the locales summaries are written in.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Match returns the supported tag closest to locale, defaulting to English.
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return language.English
	}
	return supportedTags[index]
}

// Line describes the outcome of ctx in locale. An unresolved context yields
// an empty string.
func Line(ctx chase.Context, locale string) string {
	p := message.NewPrinter(Match(locale))
	attacker, target := name(ctx.Attacker), name(ctx.Target)

	if ctx.Mooks != nil {
		return mooksLine(p, ctx, attacker, target)
	}
	result := ctx.Result
	if result == nil {
		return ""
	}
	if result.Hit == nil {
		if result.WayAwfulFailure {
			return p.Sprintf(msgWayAwful, attacker, target, result.ActionResult, ctx.ModifiedDefense)
		}
		return p.Sprintf(msgMiss, attacker, target, result.ActionResult, ctx.ModifiedDefense)
	}

	hit := result.Hit
	if ctx.Target.Type == vehicle.TypeMook {
		return p.Sprintf(msgKillMooks, attacker, ctx.Count, target)
	}
	switch ctx.Method {
	case chase.RamSideswipe:
		condition := 0
		if hit.ConditionPoints != nil {
			condition = *hit.ConditionPoints
		}
		return p.Sprintf(msgRam, attacker, target, hit.ChasePoints, condition, hit.Smackdown)
	case chase.NarrowTheGap:
		return p.Sprintf(msgNarrow, attacker, target, hit.ChasePoints, hit.Smackdown)
	case chase.WidenTheGap:
		return p.Sprintf(msgWiden, attacker, target, hit.ChasePoints, hit.Smackdown)
	default:
		return p.Sprintf(msgEvade, attacker, target, hit.ChasePoints, hit.Smackdown)
	}
}

func mooksLine(p *message.Printer, ctx chase.Context, attacker, target string) string {
	mooks := ctx.Mooks
	if !mooks.Success {
		return p.Sprintf(msgMooksAllMiss, attacker, target)
	}
	hits := 0
	for _, roll := range mooks.Rolls {
		if roll.Success() {
			hits++
		}
	}
	if ctx.Method == chase.RamSideswipe {
		return p.Sprintf(msgMooksRamHit, hits, len(mooks.Rolls), attacker, target, mooks.ChasePoints, mooks.ConditionPoints)
	}
	return p.Sprintf(msgMooksHit, hits, len(mooks.Rolls), attacker, target, mooks.ChasePoints)
}

func name(v vehicle.Vehicle) string {
	if v.Name != "" {
		return v.Name
	}
	if v.ID != "" {
		return v.ID
	}
	return "?"
}
