// Package server exposes the wizard over a JSON HTTP API for the web
// dashboard, plus a websocket stream of phase transitions per wizard.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/foundrly/foundrly/assistant"
	"github.com/foundrly/foundrly/backend"
	"github.com/foundrly/foundrly/content"
	"github.com/foundrly/foundrly/preview"
	"github.com/foundrly/foundrly/wizard"
)

// Deps are the collaborators a Server drives. Everything except Logger
// is optional; missing pieces degrade to demo mode.
type Deps struct {
	Logger    *zap.Logger
	Timings   wizard.Timings
	Publisher wizard.AdPublisher
	Pinger    wizard.Pinger
	Saver     wizard.Saver
	Backend   *backend.Client
	Assistant assistant.Client
}

type Server struct {
	store     *wizardStore
	logger    *zap.Logger
	timings   wizard.Timings
	publisher wizard.AdPublisher
	pinger    wizard.Pinger
	saver     wizard.Saver
	backend   *backend.Client
	assistant assistant.Client
}

type wizardStore struct {
	mu      sync.Mutex
	wizards map[string]*wizard.Wizard
}

func newStore() *wizardStore {
	return &wizardStore{wizards: make(map[string]*wizard.Wizard)}
}

func (s *wizardStore) set(id string, w *wizard.Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[id] = w
}

func (s *wizardStore) get(id string) (*wizard.Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	return w, ok
}

func (s *wizardStore) remove(id string) (*wizard.Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	if ok {
		delete(s.wizards, id)
	}
	return w, ok
}

func New(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timings := deps.Timings
	if timings == (wizard.Timings{}) {
		timings = wizard.DefaultTimings()
	}
	return &Server{
		store:     newStore(),
		logger:    logger,
		timings:   timings,
		publisher: deps.Publisher,
		pinger:    deps.Pinger,
		saver:     deps.Saver,
		backend:   deps.Backend,
		assistant: deps.Assistant,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/wizards", s.handleWizardCreate)
	mux.HandleFunc("/api/wizards/", s.handleWizardByID)
	mux.HandleFunc("/api/slots", s.handleSlots)
	mux.HandleFunc("/api/welcome", s.handleWelcome)
	mux.HandleFunc("/api/content-items", s.handleContentItems)
	return s.logMiddleware(mux)
}

// --- Handlers ---

type wizardCreateReq struct {
	Surface string `json:"surface"`
	BrandID string `json:"brand_id,omitempty"`
}

func (s *Server) handleWizardCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req wizardCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := "demo-user"
	if s.backend != nil {
		if sess, err := s.backend.GetSession(r.Context()); err == nil {
			userID = sess.UserID
		} else {
			s.logger.Debug("session lookup failed, using demo identity", zap.Error(err))
		}
	}
	brandID := req.BrandID
	if brandID == "" {
		brandID = "demo-brand"
	}

	wz, err := wizard.New(content.Surface(req.Surface),
		wizard.WithTimings(s.timings),
		wizard.WithLogger(s.logger),
		wizard.WithPublisher(s.publisher),
		wizard.WithPinger(s.pinger),
		wizard.WithSaver(s.saver),
		wizard.WithIdentity(userID, brandID),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.store.set(wz.ID(), wz)
	writeJSON(w, wz.Snapshot())
}

type inputReq struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Keywords string `json:"keywords"`
}

type selectReq struct {
	TypeID string `json:"type_id"`
}

type fieldReq struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

type refineReq struct {
	Instruction string `json:"instruction"`
}

type connectReq struct {
	Credential string `json:"credential"`
}

type scheduleReq struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (s *Server) handleWizardByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/wizards/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	wz, ok := s.store.get(id)
	if !ok {
		http.Error(w, "wizard not found", http.StatusNotFound)
		return
	}

	switch action {
	case "":
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, wz.Snapshot())
		case http.MethodDelete:
			s.store.remove(id)
			wz.Close()
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	case "events":
		s.handleEvents(w, r, wz)
	case "preview":
		s.handlePreview(w, r, wz)
	default:
		s.handleWizardAction(w, r, wz, action)
	}
}

// handleWizardAction maps the remaining action verbs onto wizard
// methods. Guarded no-ops return the unchanged snapshot with 200: the
// API mirrors the UI's disabled-control discipline instead of erroring.
func (s *Server) handleWizardAction(w http.ResponseWriter, r *http.Request, wz *wizard.Wizard, action string) {
	switch action {
	case "input":
		var req inputReq
		if !decodeBody(w, r, &req) {
			return
		}
		wz.AdvanceFromInput(content.BrandInput{Name: req.Name, Website: req.Website, Keywords: req.Keywords})
	case "select":
		var req selectReq
		if !decodeBody(w, r, &req) {
			return
		}
		wz.SelectType(req.TypeID)
	case "editor":
		switch r.Method {
		case http.MethodPost:
			wz.OpenEditor()
		case http.MethodDelete:
			wz.CloseEditor()
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
	case "field":
		var req fieldReq
		if !decodeBody(w, r, &req) {
			return
		}
		if err := wz.UpdateField(req.Path, req.Value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	case "refine":
		var req refineReq
		if !decodeBody(w, r, &req) {
			return
		}
		wz.SendRefinement(req.Instruction)
	case "undo":
		if !requirePost(w, r) {
			return
		}
		wz.Undo()
	case "connect":
		var req connectReq
		if !decodeBody(w, r, &req) {
			return
		}
		wz.Connect(req.Credential)
	case "publish":
		if !requirePost(w, r) {
			return
		}
		wz.BeginPublish()
	case "confirm":
		if !requirePost(w, r) {
			return
		}
		wz.ConfirmPublish()
	case "cancel":
		if !requirePost(w, r) {
			return
		}
		wz.CancelPublish()
	case "schedule":
		var req scheduleReq
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Date == "" && req.Time == "" {
			wz.BeginSchedule()
		} else if err := wz.Schedule(req.Date, req.Time); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	default:
		http.NotFound(w, r)
		return
	}
	writeJSON(w, wz.Snapshot())
}

// handlePreview opens/closes the preview overlay on POST/DELETE and
// returns the rendered platform mock on GET.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request, wz *wizard.Wizard) {
	switch r.Method {
	case http.MethodPost:
		wz.OpenPreview()
		writeJSON(w, wz.Snapshot())
	case http.MethodDelete:
		wz.ClosePreview()
		writeJSON(w, wz.Snapshot())
	case http.MethodGet:
		c := wz.Content()
		if c == nil {
			http.Error(w, "no content generated yet", http.StatusConflict)
			return
		}
		html, err := preview.Render(c)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSlots serves the dashboard schedule widget without a wizard.
func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	surface := content.Surface(r.URL.Query().Get("surface"))
	if !surface.Valid() {
		surface = content.SurfaceBlog
	}
	writeJSON(w, wizard.RecommendSlots(time.Now(), surface))
}

type welcomeResp struct {
	Message string `json:"message"`
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := "founder"
	if s.backend != nil {
		if sess, err := s.backend.GetSession(r.Context()); err == nil && sess.DisplayName != "" {
			name = sess.DisplayName
		}
	}
	writeJSON(w, welcomeResp{Message: assistant.Welcome(r.Context(), s.assistant, name, s.logger)})
}

func (s *Server) handleContentItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.backend == nil {
		http.Error(w, "backend not configured", http.StatusServiceUnavailable)
		return
	}
	sess, err := s.backend.GetSession(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	items, err := s.backend.ListContentItems(r.Context(), sess.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, items)
}

// --- Helpers ---

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if !requirePost(w, r) {
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}
