package system

import (
	"net/http"
	"time"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
)

const ServiceName = "Fen Bilimleri Quiz API"

// timestampLayout is RFC 3339 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Version is set via -ldflags at build time.
var Version = "1.0.0"

// AvailableEndpoints is listed in every 404 response.
var AvailableEndpoints = []string{
	"POST /generate-questions",
	"GET /health",
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type NotFoundResponse struct {
	Success   bool     `json:"success"`
	Error     string   `json:"error"`
	Available []string `json:"available"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// Root answers keep-alive pings from the hosting platform.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	config.Text(w, http.StatusOK, "Server awake - "+ServiceName)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Service:   ServiceName,
		Version:   Version,
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	config.WithContext(r.Context()).
		WithField("method", r.Method).
		WithField("path", r.URL.Path).
		Debug("route not found")

	config.JSON(w, http.StatusNotFound, NotFoundResponse{
		Error:     "Endpoint bulunamadı",
		Available: AvailableEndpoints,
	})
}
