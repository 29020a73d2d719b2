package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/matcher"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/config"
)

// InsightGenerator produces natural-language recruiting insights for the top
// matched schools. Implementations may fail; callers substitute fallback
// text and never propagate the error to the athlete.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, athlete *models.Athlete, metrics *models.CombineMetrics, topMatches []matcher.MatchedSchool) ([]string, error)
}

// FallbackInsights are used whenever the generator is unavailable.
func FallbackInsights() []string {
	return []string{
		"Your top matches balance athletic fit with academic opportunity. Prioritize schools actively recruiting your position.",
		"Reach out to the coaching staff at your highest-ranked matches with your latest film and verified combine numbers.",
		"Keep your profile current. Updated metrics and grades can move borderline schools into strong matches.",
	}
}

// AnthropicRequest is the request body for the Anthropic messages API.
type AnthropicRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnthropicResponse is the subset of the API response we read.
type AnthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// AnthropicInsightGenerator calls the Anthropic API for match insights. The
// call is rate limited and wrapped in a circuit breaker so a flapping
// upstream degrades to fallback text instead of slowing every request.
type AnthropicInsightGenerator struct {
	config    *config.Config
	logger    *logrus.Logger
	apiClient *http.Client
	breaker   *gobreaker.CircuitBreaker
	limiter   *rate.Limiter
}

func NewAnthropicInsightGenerator(cfg *config.Config, logger *logrus.Logger) *AnthropicInsightGenerator {
	timeout := cfg.AITimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	perMinute := cfg.AIRateLimit
	if perMinute <= 0 {
		perMinute = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "anthropic-insights",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &AnthropicInsightGenerator{
		config:  cfg,
		logger:  logger,
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		apiClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (g *AnthropicInsightGenerator) GenerateInsights(ctx context.Context, athlete *models.Athlete, metrics *models.CombineMetrics, topMatches []matcher.MatchedSchool) ([]string, error) {
	if g.config.AnthropicAPIKey == "" {
		return nil, errors.New("anthropic API key not configured")
	}
	if !g.limiter.Allow() {
		return nil, errors.New("insight rate limit exceeded")
	}

	prompt := g.buildPrompt(athlete, metrics, topMatches)

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.callAPI(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

func (g *AnthropicInsightGenerator) buildPrompt(athlete *models.Athlete, metrics *models.CombineMetrics, topMatches []matcher.MatchedSchool) string {
	var prompt strings.Builder

	prompt.WriteString("You are a college football recruiting advisor for high-school athletes.\n\n")
	prompt.WriteString(fmt.Sprintf("Athlete: %s %s, position %s, class of %d\n",
		athlete.FirstName, athlete.LastName, athlete.Position, athlete.GraduationYear))
	if athlete.GPA != nil {
		prompt.WriteString(fmt.Sprintf("GPA: %.2f\n", *athlete.GPA))
	}
	if athlete.ACTScore != nil {
		prompt.WriteString(fmt.Sprintf("ACT: %d\n", *athlete.ACTScore))
	}
	if metrics != nil {
		if metrics.FortyYard != nil {
			prompt.WriteString(fmt.Sprintf("40-yard dash: %.2fs\n", *metrics.FortyYard))
		}
		if metrics.VerticalJump != nil {
			prompt.WriteString(fmt.Sprintf("Vertical jump: %.1f in\n", *metrics.VerticalJump))
		}
		if metrics.BenchPressMax != nil {
			prompt.WriteString(fmt.Sprintf("Bench press max: %.0f lb\n", *metrics.BenchPressMax))
		}
	}

	prompt.WriteString("\nTop matched schools:\n")
	for _, school := range topMatches {
		prompt.WriteString(fmt.Sprintf("- %s (%s, %s): overall match %d, academic %d, athletic %d\n",
			school.Name, school.Division, school.State,
			school.OverallMatch, school.AcademicMatch, school.AthleticMatch))
	}

	prompt.WriteString("\nWrite 3 short, specific insights about this athlete's fit with these schools and what to do next.\n")
	prompt.WriteString("Respond with ONLY a JSON array of strings, e.g. [\"insight one\", \"insight two\", \"insight three\"]")

	return prompt.String()
}

func (g *AnthropicInsightGenerator) callAPI(ctx context.Context, prompt string) ([]string, error) {
	reqBody := AnthropicRequest{
		Model:     "claude-3-haiku-20240307",
		MaxTokens: 1024,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.config.AnthropicAPIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := g.apiClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var anthropicResp AnthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&anthropicResp); err != nil {
		return nil, err
	}

	if len(anthropicResp.Content) == 0 {
		return nil, errors.New("no content in API response")
	}

	return parseInsights(anthropicResp.Content[0].Text)
}

// parseInsights extracts the JSON string array out of the completion text.
func parseInsights(responseText string) ([]string, error) {
	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return nil, errors.New("no JSON array in API response")
	}

	var insights []string
	if err := json.Unmarshal([]byte(responseText[startIdx:endIdx+1]), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse insights: %w", err)
	}
	if len(insights) == 0 {
		return nil, errors.New("empty insights in API response")
	}
	return insights, nil
}
