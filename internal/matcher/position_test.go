package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		position string
		want     PositionFamily
	}{
		{"Quarterback (QB)", FamilyQuarterback},
		{"Dual-threat QB", FamilyQuarterback},
		{"Linebacker (LB)", FamilyLinebacker},
		{"Middle Linebacker", FamilyLinebacker},
		{"Offensive Line (OL)", FamilyLine},
		{"Left Tackle", FamilyLine},
		{"Offensive Guard", FamilyLine},
		{"Center", FamilyLine},
		{"Running Back (RB)", FamilySkillSpeed},
		{"Wide Receiver (WR)", FamilySkillSpeed},
		{"Cornerback (CB)", FamilySkillSpeed},
		{"Safety (S)", FamilySkillSpeed},
		{"Tight End (TE)", FamilySkillSpeed},
		{"Kicker (K)", FamilyOther},
		{"Punter", FamilyOther},
		{"", FamilyOther},
	}
	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPosition(tt.position))
		})
	}
}

func TestStripParentheticals(t *testing.T) {
	assert.Equal(t, "Quarterback", StripParentheticals("Quarterback (QB)"))
	assert.Equal(t, "Kicker", StripParentheticals("Kicker"))
	assert.Equal(t, "Wide Receiver", StripParentheticals("Wide Receiver (WR)"))
	assert.Equal(t, "", StripParentheticals(""))
}

func TestPositionsOverlap(t *testing.T) {
	assert.True(t, positionsOverlap("Quarterback (QB)", "quarterback"))
	assert.True(t, positionsOverlap("Offensive Lineman (OL)", "Offensive Lineman"))
	assert.False(t, positionsOverlap("Wide Receiver (WR)", "Safety (S)"))
	assert.False(t, positionsOverlap("", "Quarterback (QB)"))
}
