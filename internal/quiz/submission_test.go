package quiz_test

import (
	"reflect"
	"testing"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

func TestRawSubmissionDecode(t *testing.T) {
	raw := quiz.RawSubmission{
		"q1": {"option": "b"},
		"q2": {"box:b1": "x+1", "box:b2": "7"},
		"q3": {
			"steps":    `["2x=10","x=5"]`,
			"final:f1": "x=5",
		},
		"q4": {"steps": "line one\nline two", "final": "9"},
	}
	sub := raw.Decode()

	if sub["q1"].SelectedOption != "b" {
		t.Fatalf("q1: %+v", sub["q1"])
	}
	if got := sub["q2"].BoxValues; !reflect.DeepEqual(got, map[string]string{"b1": "x+1", "b2": "7"}) {
		t.Fatalf("q2 boxes: %v", got)
	}
	if got := sub["q3"].Steps; !reflect.DeepEqual(got, []string{"2x=10", "x=5"}) {
		t.Fatalf("q3 steps: %v", got)
	}
	if sub["q3"].FinalByBox["f1"] != "x=5" {
		t.Fatalf("q3 final: %+v", sub["q3"])
	}
	// newline fallback for older clients
	if got := sub["q4"].Steps; !reflect.DeepEqual(got, []string{"line one", "line two"}) {
		t.Fatalf("q4 steps: %v", got)
	}
	if sub["q4"].Final != "9" {
		t.Fatalf("q4 final: %+v", sub["q4"])
	}
}

func TestCleanSteps(t *testing.T) {
	got := quiz.CleanSteps([]string{" ", "a", "", "b", "\t"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("CleanSteps = %v", got)
	}
}

func TestFinalAnswers(t *testing.T) {
	q := quiz.Question{AnswerBoxes: []quiz.AnswerBox{{ID: "f1", Answer: "5"}, {ID: "f2", Answer: "7"}}}

	a := quiz.Answer{FinalByBox: map[string]string{"f2": "7", "f1": "5"}}
	if got := a.FinalAnswers(&q); !reflect.DeepEqual(got, []string{"5", "7"}) {
		t.Fatalf("box order not preserved: %v", got)
	}

	// single box, no final value: last non-empty step stands in
	q1 := quiz.Question{AnswerBoxes: []quiz.AnswerBox{{ID: "f1", Answer: "x=5"}}}
	a = quiz.Answer{Steps: []string{"2x=10", "x=5", "  "}}
	if got := a.FinalAnswers(&q1); !reflect.DeepEqual(got, []string{"x=5"}) {
		t.Fatalf("implicit final: %v", got)
	}

	// two boxes, no finals: no implicit recovery
	a = quiz.Answer{Steps: []string{"x=5"}}
	if got := a.FinalAnswers(&q); !reflect.DeepEqual(got, []string{"", ""}) {
		t.Fatalf("multi-box implicit recovery should not happen: %v", got)
	}

	// no boxes at all
	a = quiz.Answer{Final: "3"}
	if got := a.FinalAnswers(&quiz.Question{}); !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("bare final: %v", got)
	}
}
