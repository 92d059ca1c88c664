package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/auth"
	"github.com/sells-group/directory-cli/internal/directory"
	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/store"
	"github.com/sells-group/directory-cli/internal/validator"
	"github.com/sells-group/directory-cli/pkg/bot"
	"github.com/sells-group/directory-cli/pkg/drive"
)

// directoryAPI is the slice of the directory service the handlers use.
type directoryAPI interface {
	Analyze(ctx context.Context) (validator.Report, error)
	ListBusinessFolders(ctx context.Context) ([]drive.File, error)
	BusinessImagesByName(ctx context.Context, name string) ([]model.ClassifiedImage, model.ImageFolder, error)
	PublishAll(ctx context.Context) (directory.PublishSummary, error)
}

type server struct {
	store        store.Store
	auth         *auth.Service
	dir          directoryAPI
	bot          bot.Client
	botPollEvery time.Duration
}

func (s *server) router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/verify", s.handleVerify)

		r.Group(func(r chi.Router) {
			r.Use(s.auth.Middleware)

			r.Post("/analyze/businesses", s.handleAnalyze)
			r.Get("/analyses", s.handleListAnalyses)
			r.Get("/analyses/{id}", s.handleGetAnalysis)

			r.Get("/drive/folders", s.handleListFolders)
			r.Get("/drive/business-images", s.handleBusinessImages)
			r.Post("/make-images-public", s.handleMakeImagesPublic)

			r.Get("/bot/status", s.handleBotStatus)
			r.Get("/bot/progress", s.handleBotProgress)
			r.Get("/bot/logs/stream", s.handleBotLogStream)
		})
	})

	return r
}

// -- auth --

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Company  string `json:"company"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := s.auth.Register(r.Context(), req.Email, req.Password, req.Name, req.Company)
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered")
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "email, password and name are required")
		return
	case err != nil:
		zap.L().Error("register failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user, "token": token})
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		zap.L().Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user, "token": token})
}

func (s *server) handleVerify(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	claims, err := s.auth.Verify(header[len(prefix):])
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "claims": claims})
}

// -- analysis --

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompleteOnly bool `json:"complete_only"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	report, err := s.dir.Analyze(r.Context())
	if err != nil {
		zap.L().Error("analysis failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "analysis failed")
		return
	}

	run, err := s.persistAnalysis(r.Context(), report)
	if err != nil {
		// The analysis itself succeeded; history is best effort.
		zap.L().Warn("could not persist analysis", zap.Error(err))
	}

	resp := map[string]any{
		"complete":                  report.Complete,
		"statistics":                report.Statistics,
		"missing_fields":            report.MissingFields,
		"images":                    report.Images,
		"can_proceed_to_automation": report.CanProceedToAutomation,
	}
	if !req.CompleteOnly {
		resp["incomplete"] = report.Incomplete
	}
	if run != nil {
		resp["analysis_id"] = run.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) persistAnalysis(ctx context.Context, report validator.Report) (*model.AnalysisRun, error) {
	summary, err := json.Marshal(struct {
		MissingFields []validator.FieldCount  `json:"missing_fields"`
		Images        validator.ImageAnalysis `json:"images"`
	}{report.MissingFields, report.Images})
	if err != nil {
		return nil, err
	}

	run := &model.AnalysisRun{
		Source:         "drive",
		Total:          report.Statistics.Total,
		Complete:       report.Statistics.Complete,
		Incomplete:     report.Statistics.Incomplete,
		CompletionRate: report.Statistics.CompletionRate,
		Summary:        summary,
	}
	if err := s.store.SaveAnalysis(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.ListAnalyses(r.Context(), 0)
	if err != nil {
		zap.L().Error("list analyses failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not list analyses")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analyses": runs})
}

func (s *server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetAnalysis(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		zap.L().Error("get analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load analysis")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// -- drive --

func (s *server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := s.dir.ListBusinessFolders(r.Context())
	if err != nil {
		zap.L().Error("list folders failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "could not list folders")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"folders": folders})
}

func (s *server) handleBusinessImages(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	imgs, folder, err := s.dir.BusinessImagesByName(r.Context(), name)
	if errors.Is(err, directory.ErrFolderNotFound) {
		writeError(w, http.StatusNotFound, "no image folder for that business")
		return
	}
	if err != nil {
		zap.L().Error("business images failed", zap.String("business", name), zap.Error(err))
		writeError(w, http.StatusBadGateway, "could not load images")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"folder": folder, "images": imgs})
}

func (s *server) handleMakeImagesPublic(w http.ResponseWriter, r *http.Request) {
	summary, err := s.dir.PublishAll(r.Context())
	if err != nil {
		zap.L().Error("make images public failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "could not publish images")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// -- bot proxy --

func (s *server) handleBotStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.bot.Status(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "bot unreachable")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *server) handleBotProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.bot.Progress(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "bot unreachable")
		return
	}

	summary, err := s.bot.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "bot unreachable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"businesses": progress, "summary": summary})
}

// handleBotLogStream relays the bot's activity log as server-sent events,
// polling the bot between flushes until the client disconnects.
func (s *server) handleBotLogStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	every := s.botPollEvery
	if every <= 0 {
		every = 2 * time.Second
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var lastID string
	for {
		entries, err := s.bot.Logs(r.Context(), lastID)
		if err != nil {
			// Keep the stream open; the bot may come back.
			zap.L().Debug("bot log poll failed", zap.Error(err))
		}
		for _, entry := range entries {
			data, err := json.Marshal(entry)
			if err != nil {
				continue
			}
			w.Write([]byte("event: log\ndata: ")) //nolint:errcheck
			w.Write(data)                         //nolint:errcheck
			w.Write([]byte("\n\n"))               //nolint:errcheck
			lastID = entry.ID
		}
		flusher.Flush()

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

// -- helpers --

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
