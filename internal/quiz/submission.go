package quiz

import (
	"encoding/json"
	"strings"
)

// RawSubmission is the wire form of a student's answers: question id to a
// flat sub-key map. Sub-keys:
//
//	"option"       selected MCQ option id
//	"box:<id>"     fill-in-blank value for one answer box
//	"steps"        open-ended working steps, JSON array (or newline-joined)
//	"final:<id>"   open-ended final answer for one answer box
//	"final"        bare final answer when the question has no boxes
type RawSubmission map[string]map[string]string

// Answer is the canonical per-question submission the engine consumes.
type Answer struct {
	SelectedOption string            `json:"selected_option,omitempty"`
	BoxValues      map[string]string `json:"box_values,omitempty"`
	Steps          []string          `json:"steps,omitempty"`
	FinalByBox     map[string]string `json:"final_by_box,omitempty"`
	Final          string            `json:"final,omitempty"` // bare final answer, no boxes
}

// Submission maps question id to its decoded answer.
type Submission map[string]Answer

// Decode lowers the sub-key wire form into the canonical Submission. It is
// tolerant of partial or unknown keys; unknown sub-keys are ignored.
func (r RawSubmission) Decode() Submission {
	out := make(Submission, len(r))
	for qid, fields := range r {
		var a Answer
		for k, v := range fields {
			switch {
			case k == "option":
				a.SelectedOption = v
			case k == "steps":
				a.Steps = decodeSteps(v)
			case k == "final":
				a.Final = v
			case strings.HasPrefix(k, "final:"):
				if a.FinalByBox == nil {
					a.FinalByBox = map[string]string{}
				}
				a.FinalByBox[strings.TrimPrefix(k, "final:")] = v
			case strings.HasPrefix(k, "box:"):
				if a.BoxValues == nil {
					a.BoxValues = map[string]string{}
				}
				a.BoxValues[strings.TrimPrefix(k, "box:")] = v
			}
		}
		out[qid] = a
	}
	return out
}

// decodeSteps accepts a JSON string array or, for older clients, a
// newline-joined blob.
func decodeSteps(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if strings.HasPrefix(v, "[") {
		var steps []string
		if err := json.Unmarshal([]byte(v), &steps); err == nil {
			return steps
		}
	}
	return strings.Split(v, "\n")
}

// CleanSteps drops empty/whitespace-only working steps, preserving order.
func CleanSteps(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// FinalAnswers returns the submitted final answers for q in the declared
// order of its answer boxes. When the submission carries no dedicated final
// value and the question expects a single one, the last non-empty working
// step stands in for it (quizzes that never collected a final-answer field).
func (a Answer) FinalAnswers(q *Question) []string {
	if len(q.AnswerBoxes) > 0 {
		out := make([]string, 0, len(q.AnswerBoxes))
		empty := true
		for _, b := range q.AnswerBoxes {
			v := a.FinalByBox[b.ID]
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			out = append(out, v)
		}
		if empty && len(q.AnswerBoxes) == 1 {
			if v := a.singleFinal(); v != "" {
				return []string{v}
			}
		}
		return out
	}
	if v := a.singleFinal(); v != "" {
		return []string{v}
	}
	return nil
}

func (a Answer) singleFinal() string {
	if strings.TrimSpace(a.Final) != "" {
		return a.Final
	}
	if clean := CleanSteps(a.Steps); len(clean) > 0 {
		return clean[len(clean)-1]
	}
	return ""
}
