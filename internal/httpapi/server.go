package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/isawsback/isawsback/internal/check"
	"github.com/isawsback/isawsback/internal/domain"
	apimw "github.com/isawsback/isawsback/internal/httpapi/middleware"
)

// Server is the thin read/trigger surface over the checker. Rendering lives
// with the callers; this layer only hands out Results.
type Server struct {
	Logger  *zap.Logger
	Checker *check.Checker
}

func NewServer(l *zap.Logger, c *check.Checker) *Server {
	return &Server{Logger: l, Checker: c}
}

// RouterConfig carries the auth/CORS/rate-limit knobs from config.
type RouterConfig struct {
	Keys           apimw.Keys
	AllowedOrigins []string
	PublicRPM      int
	PublicBurst    int
	AdminRPM       int
	AdminBurst     int
}

func (s *Server) Router(rc RouterConfig) http.Handler {
	r := chi.NewRouter()
	if len(rc.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: rc.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Authorization", "X-API-Key", "Content-Type"},
		}))
	} else {
		r.Use(cors.AllowAll().Handler)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(rc.PublicRPM, rc.PublicBurst))
		r.Use(apimw.RequireAny(rc.Keys))
		r.Get("/api/status", s.handleStatus)
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(rc.AdminRPM, rc.AdminBurst))
		r.Use(apimw.RequireAdmin(rc.Keys))
		r.Post("/api/check", s.handleCheck)
	})

	return r
}

// statusResponse wraps the raw Result with the display helpers the excluded
// UI layer needs (word and simplified source label).
type statusResponse struct {
	Result      *domain.Result `json:"result"`
	Word        string         `json:"word"`
	SourceLabel string         `json:"source_label"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	res, err := s.Checker.LoadLastResult(r.Context())
	if err != nil {
		s.Logger.Warn("load_last_error", zap.Error(err))
		http.Error(w, "load error", http.StatusInternalServerError)
		return
	}
	if res == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no result yet"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(statusResponse{
		Result:      res,
		Word:        res.DownWord(),
		SourceLabel: res.SourceLabel(),
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	res := s.Checker.CheckNow(r.Context())

	s.Logger.Info("manual_check",
		zap.String("down", res.DownWord()),
		zap.String("source", res.SourceLabel()),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"result": res,
		"word":   res.DownWord(),
	})
}
