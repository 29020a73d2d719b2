package services

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/matcher"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/config"
)

func TestParseInsights_PlainArray(t *testing.T) {
	insights, err := parseInsights(`["first", "second", "third"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, insights)
}

func TestParseInsights_ArrayEmbeddedInProse(t *testing.T) {
	text := `Here are the insights you asked for:

["insight one", "insight two"]

Let me know if you need more detail.`
	insights, err := parseInsights(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"insight one", "insight two"}, insights)
}

func TestParseInsights_NoArray(t *testing.T) {
	_, err := parseInsights("sorry, I cannot help with that")
	assert.Error(t, err)
}

func TestParseInsights_EmptyArray(t *testing.T) {
	_, err := parseInsights("[]")
	assert.Error(t, err)
}

func TestParseInsights_MalformedJSON(t *testing.T) {
	_, err := parseInsights(`["unterminated]`)
	assert.Error(t, err)
}

func TestFallbackInsights_ThreeEntries(t *testing.T) {
	insights := FallbackInsights()
	assert.Len(t, insights, 3)
	for _, s := range insights {
		assert.NotEmpty(t, s)
	}
}

func TestBuildPrompt_IncludesProfileAndSchools(t *testing.T) {
	gen := NewAnthropicInsightGenerator(&config.Config{AnthropicAPIKey: "test"}, logrus.New())
	athlete := &models.Athlete{
		FirstName:      "Marcus",
		LastName:       "Webb",
		Position:       "Quarterback (QB)",
		GraduationYear: 2027,
		GPA:            floatPtr(3.9),
	}
	metrics := &models.CombineMetrics{FortyYard: floatPtr(4.6)}
	top := []matcher.MatchedSchool{
		{
			College:      catalog.College{Name: "University of Alabama", Division: catalog.DivisionD1, State: "AL"},
			OverallMatch: 88,
		},
	}

	prompt := gen.buildPrompt(athlete, metrics, top)
	assert.Contains(t, prompt, "Marcus Webb")
	assert.Contains(t, prompt, "GPA: 3.90")
	assert.Contains(t, prompt, "40-yard dash: 4.60s")
	assert.Contains(t, prompt, "University of Alabama")
	assert.True(t, strings.Contains(prompt, "JSON array"))
}

func TestGenerateInsights_MissingAPIKey(t *testing.T) {
	gen := NewAnthropicInsightGenerator(&config.Config{}, logrus.New())
	_, err := gen.GenerateInsights(context.Background(), &models.Athlete{}, nil, nil)
	assert.Error(t, err)
}
