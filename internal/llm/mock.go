package llm

import (
	"context"
	"sync"
)

// SampleQuizText is what the mock backend answers with once its queue is
// empty, so a local server started with LLM_PROVIDER=mock is usable.
const SampleQuizText = `İşte sorular:
{"questions": [
  {
    "question": "Güneş'in çekirdeğinde gerçekleşen füzyon reaksiyonu sonucunda ne oluşur?",
    "options": ["Sadece ışık", "Işık ve ısı enerjisi", "Sadece ısı enerjisi", "Sadece radyasyon"],
    "answer": 1,
    "explanation": "Güneş'te hidrojen çekirdekleri birleşerek helyuma dönüşür ve bu süreçte ışık ve ısı enerjisi açığa çıkar."
  }
]}`

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text string
	Err  error
}

// MockProvider is a deterministic Provider for tests and offline runs.
// It returns canned responses in FIFO order and records every request.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	fallback  *MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// WithFallback sets the response used when the queue is empty. Without one
// an empty queue yields ErrProviderUnavailable.
func (m *MockProvider) WithFallback(resp MockResponse) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = &resp
	return m
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.fallback != nil:
		resp = *m.fallback
	default:
		return nil, &ErrProviderUnavailable{Provider: ProviderMock}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{Text: resp.Text, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
