package matcher

import "strings"

// PositionFamily is the coarse classification used to pick scoring weights.
// The free-text position is classified once and retained only for display.
type PositionFamily string

const (
	FamilyQuarterback PositionFamily = "quarterback"
	FamilySkillSpeed  PositionFamily = "skill-speed"
	FamilyLine        PositionFamily = "line"
	FamilyLinebacker  PositionFamily = "linebacker"
	FamilyOther       PositionFamily = "other"
)

var skillSpeedTerms = []string{
	"running back", "wide receiver", "receiver", "cornerback", "corner",
	"safety", "defensive back", "tight end", "return", "back",
}

// ClassifyPosition maps a free-text position such as "Quarterback (QB)" to
// its family. Linebacker is checked before line and skill because the word
// contains both "line" and "back".
func ClassifyPosition(position string) PositionFamily {
	p := strings.ToLower(position)
	if p == "" {
		return FamilyOther
	}
	switch {
	case strings.Contains(p, "quarterback") || strings.Contains(p, "qb"):
		return FamilyQuarterback
	case strings.Contains(p, "linebacker") || strings.Contains(p, "(lb") || strings.Contains(p, "lb)"):
		return FamilyLinebacker
	case strings.Contains(p, "line") || strings.Contains(p, "tackle") ||
		strings.Contains(p, "guard") || strings.Contains(p, "center"):
		return FamilyLine
	}
	for _, term := range skillSpeedTerms {
		if strings.Contains(p, term) {
			return FamilySkillSpeed
		}
	}
	return FamilyOther
}

// StripParentheticals removes any "(...)" abbreviation from a position
// string, e.g. "Quarterback (QB)" becomes "Quarterback".
func StripParentheticals(position string) string {
	open := strings.Index(position, "(")
	if open == -1 {
		return strings.TrimSpace(position)
	}
	close := strings.Index(position[open:], ")")
	if close == -1 {
		return strings.TrimSpace(position[:open])
	}
	return strings.TrimSpace(position[:open] + position[open+close+1:])
}

// positionsOverlap reports whether two free-text positions refer to the same
// role, comparing case-insensitively after stripping abbreviations.
func positionsOverlap(a, b string) bool {
	sa := strings.ToLower(StripParentheticals(a))
	sb := strings.ToLower(StripParentheticals(b))
	if sa == "" || sb == "" {
		return false
	}
	return strings.Contains(sa, sb) || strings.Contains(sb, sa)
}
