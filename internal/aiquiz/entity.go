package aiquiz

// AIEmoji marks every generated question in the client UI.
const AIEmoji = "🤖"

// QuizRequest is a generation request as decoded from the client.
type QuizRequest struct {
	Grade         string
	Unit          string
	Topic         string
	QuestionCount int
}

// CandidateQuestion is a model-produced item that passed schema validation
// but is not yet annotated with request metadata.
type CandidateQuestion struct {
	Question    string
	Options     []string
	Answer      int
	Explanation string
}

// ValidatedQuestion is an accepted question as sent to the client.
type ValidatedQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
	IsAI        bool     `json:"isAI"`
	Grade       string   `json:"grade"`
	Unit        string   `json:"unit"`
	Topic       string   `json:"topic"`
	Emoji       string   `json:"emoji"`
}

// Annotate attaches the request metadata; grade, unit and topic always come
// from the request, never from model output.
func (c CandidateQuestion) Annotate(meta QuizRequest) ValidatedQuestion {
	return ValidatedQuestion{
		Question:    c.Question,
		Options:     c.Options,
		Answer:      c.Answer,
		Explanation: c.Explanation,
		IsAI:        true,
		Grade:       meta.Grade,
		Unit:        meta.Unit,
		Topic:       meta.Topic,
		Emoji:       AIEmoji,
	}
}

type GenerateResponse struct {
	Success   bool                `json:"success"`
	Questions []ValidatedQuestion `json:"questions"`
	Count     int                 `json:"count"`
	Message   string              `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
