package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ItemDiagnostic explains why one item of the model's question list was
// dropped.
type ItemDiagnostic struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ParseReport holds the accepted questions and why the rest were dropped.
type ParseReport struct {
	Questions []ValidatedQuestion
	Dropped   []ItemDiagnostic
}

// ParseAndValidate turns raw model text into annotated questions.
// Invalid items are dropped silently; see Parse for the diagnostics.
func ParseAndValidate(raw string, meta QuizRequest) ([]ValidatedQuestion, error) {
	report, err := Parse(raw, meta)
	if err != nil {
		return nil, err
	}
	return report.Questions, nil
}

// Parse is ParseAndValidate plus the per-item drop diagnostics.
func Parse(raw string, meta QuizRequest) (*ParseReport, error) {
	span, ok := ExtractJSONObject(raw)
	if !ok {
		return nil, &ParseError{Kind: ErrNoJSONFound}
	}

	// Numbers stay json.Number so one out-of-range value only fails its
	// own item.
	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, &ParseError{Kind: ErrMalformedJSON, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &ParseError{Kind: ErrMalformedJSON, Err: err}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &ParseError{Kind: ErrInvalidShape}
	}
	items, ok := obj["questions"].([]any)
	if !ok {
		return nil, &ParseError{Kind: ErrInvalidShape}
	}

	candidates, dropped := FilterCandidates(items)
	if len(candidates) == 0 {
		return nil, &ParseError{
			Kind: ErrNoValidQuestions,
			Err:  fmt.Errorf("%d of %d items rejected", len(dropped), len(items)),
		}
	}

	return &ParseReport{
		Questions: lo.Map(candidates, func(c CandidateQuestion, _ int) ValidatedQuestion {
			return c.Annotate(meta)
		}),
		Dropped: dropped,
	}, nil
}

// FilterCandidates keeps the items that satisfy the question schema, in
// their original order, and reports the rest. It never fails: a partially
// valid batch is still a usable batch.
func FilterCandidates(items []any) ([]CandidateQuestion, []ItemDiagnostic) {
	valid := make([]CandidateQuestion, 0, len(items))
	var dropped []ItemDiagnostic

	for i, item := range items {
		c, err := validateCandidate(item)
		if err != nil {
			dropped = append(dropped, ItemDiagnostic{Index: i, Reason: flattenReason(err)})
			continue
		}
		valid = append(valid, c)
	}
	return valid, dropped
}

// validateCandidate gates item on the candidate schema. Everything after the
// schema check is conversion of values the schema already accepted.
func validateCandidate(item any) (CandidateQuestion, error) {
	if err := candidateSchema.Validate(item); err != nil {
		return CandidateQuestion{}, err
	}

	obj := item.(map[string]any)
	rawOpts := obj["options"].([]any)

	return CandidateQuestion{
		Question:    scalarText(obj["question"]),
		Options:     lo.Map(rawOpts, func(o any, _ int) string { return scalarText(o) }),
		Answer:      int(numberValue(obj["answer"])),
		Explanation: scalarText(obj["explanation"]),
	}, nil
}

// scalarText renders a schema-accepted text value: a string, a number or
// true.
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func numberValue(v any) float64 {
	switch t := v.(type) {
	case json.Number:
		f, _ := t.Float64()
		return f
	case float64:
		return t
	default:
		return 0
	}
}

func flattenReason(err error) string {
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), "- "))
	}
	return strings.Join(lo.Compact(lines), "; ")
}
