package aiquiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

// textField accepts a JSON string or number; clients send grade as either.
type textField string

func (f *textField) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*f = textField(t)
	case float64:
		*f = textField(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		return fmt.Errorf("expected string or number, got %s", b)
	}
	return nil
}

// countField accepts a JSON number or numeric string. Anything else reads
// as zero, which falls back to the default count.
type countField int

func (c *countField) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*c = countField(int(math.Max(0, math.Min(t, math.MaxInt32))))
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		*c = countField(n)
	default:
		*c = 0
	}
	return nil
}

type generateRequestBody struct {
	Grade         textField  `json:"grade"`
	Unit          textField  `json:"unit"`
	Topic         textField  `json:"topic"`
	QuestionCount countField `json:"questionCount"`
}

func decodeQuizRequest(w http.ResponseWriter, r *http.Request) (QuizRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return QuizRequest{}, err
		}
		n, _ := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("questionCount")))
		return QuizRequest{
			Grade:         r.PostForm.Get("grade"),
			Unit:          r.PostForm.Get("unit"),
			Topic:         r.PostForm.Get("topic"),
			QuestionCount: n,
		}, nil
	}

	var body generateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return QuizRequest{}, err
	}
	return QuizRequest{
		Grade:         string(body.Grade),
		Unit:          string(body.Unit),
		Topic:         string(body.Topic),
		QuestionCount: int(body.QuestionCount),
	}, nil
}
