package stepgrader

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

	"github.com/mind-engage/mathquiz/internal/eval"
)

// ErrNotConfigured is returned when no grading service URL is set. The
// engine treats it like any other grading failure and degrades.
var ErrNotConfigured = errors.New("stepgrader: no service URL configured")

// fallbackFeedback is substituted per step when the service answers with a
// payload we cannot parse.
const fallbackFeedback = "Could not evaluate this step automatically."

// Client calls the external natural-language step-grading service and
// normalizes its untrusted response. Both wire generations are accepted:
// the legacy flat correctSolutionSteps list and the current
// modelAnswer/correctPoints/improvementPoints bundle.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type wireStep struct {
	Step     string `json:"step,omitempty"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback,omitempty"`
	Marks    int    `json:"marks,omitempty"`
}

type wireResponse struct {
	Steps []wireStep `json:"steps"`

	// legacy shape
	CorrectSolutionSteps []string `json:"correctSolutionSteps"`

	// current shape
	ModelAnswer       []string `json:"modelAnswer"`
	CorrectPoints     []string `json:"correctPoints"`
	ImprovementPoints []string `json:"improvementPoints"`

	Error string `json:"error"`
}

// GradeSteps sends one grading request and waits for the verdict. Transport,
// status and service-side errors surface as (nil, err); a syntactically
// broken body yields a per-step fallback result instead, so the caller still
// gets one entry per submitted step.
func (c *Client) GradeSteps(ctx context.Context, req eval.GradeRequest) (*eval.GradingResult, error) {
	if c == nil || c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(map[string]interface{}{
		"question":      req.Question,
		"steps":         req.Steps,
		"student_final": req.StudentFinal,
		"correct_final": req.CorrectFinal,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/grade-steps", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("stepgrader: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return fallbackResult(req.Steps), nil
	}
	if wire.Error != "" {
		return nil, fmt.Errorf("stepgrader: service error: %s", wire.Error)
	}
	return normalize(wire, req.Steps), nil
}

// normalize re-associates returned step verdicts with the submitted step
// text by position. The grader may paraphrase or invent steps, so its echoed
// text is never trusted; the returned list is truncated or padded to exactly
// the submitted count.
func normalize(wire wireResponse, submitted []string) *eval.GradingResult {
	steps := make([]eval.StepEvaluation, len(submitted))
	for i, s := range submitted {
		steps[i] = eval.StepEvaluation{Index: i, Step: s}
		if i < len(wire.Steps) {
			steps[i].Correct = wire.Steps[i].Correct
			steps[i].Feedback = wire.Steps[i].Feedback
			steps[i].Marks = wire.Steps[i].Marks
		} else {
			steps[i].Feedback = fallbackFeedback
		}
	}

	model := wire.ModelAnswer
	if len(model) == 0 {
		model = wire.CorrectSolutionSteps
	}
	return &eval.GradingResult{
		Steps:             steps,
		ModelAnswer:       emptyIfNil(model),
		CorrectPoints:     emptyIfNil(wire.CorrectPoints),
		ImprovementPoints: emptyIfNil(wire.ImprovementPoints),
	}
}

func fallbackResult(submitted []string) *eval.GradingResult {
	steps := make([]eval.StepEvaluation, len(submitted))
	for i, s := range submitted {
		steps[i] = eval.StepEvaluation{Index: i, Step: s, Feedback: fallbackFeedback}
	}
	return &eval.GradingResult{
		Steps:             steps,
		ModelAnswer:       []string{},
		CorrectPoints:     []string{},
		ImprovementPoints: []string{},
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
