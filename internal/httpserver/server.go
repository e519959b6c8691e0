// internal/httpserver/server.go
//
// HTTP wiring for the game handle API.
// Responsibilities:
//   - Router + middleware (JSON, request IDs, timeouts, panic recovery, access log).
//   - Public endpoints: "/", "/health".
//   - Handle lifecycle: POST /games (construct), DELETE /games/{id} (destroy).
//   - Play: POST /games/{id}/guesses, GET /games/{id}, GET /games/{id}/hints[/latest|/{index}].
//   - Daily game: mounted under /daily when a daily picker is configured.
//
// Notes:
//   - Each game route requires "Authorization: Bearer <token>" issued with the handle;
//     the token's subject must be the {id} in the path.
//   - Games live in the store only; nothing is written to disk.
//   - The target word is only revealed once the game is over.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/handle"
	"github.com/robalobadob/wordle/apps/go-engine/internal/store"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// Deps bundles what the server needs to run.
type Deps struct {
	Store        store.Store
	Picker       words.Picker
	Daily        *daily.Picker // optional; /daily is not mounted when nil
	Handles      *handle.Issuer
	AttemptLimit int // used when a request does not set one; defaults to game.DefaultAttemptLimit
	Logger       *zerolog.Logger
}

// Server bundles router and dependencies.
type Server struct {
	r    *chi.Mux
	deps Deps
}

// New constructs a Server, installs middleware, and registers routes.
func New(deps Deps) *Server {
	if deps.AttemptLimit < 1 {
		deps.AttemptLimit = game.DefaultAttemptLimit
	}
	if deps.Logger == nil {
		deps.Logger = &log.Logger
	}
	s := &Server{r: chi.NewRouter(), deps: deps}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(*deps.Logger))   // request-scoped logger
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-engine","endpoints":["/health","POST /games","/games/{id}","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "games": s.deps.Store.Len()})
	})

	s.r.Post("/games", s.handleNewGame)
	s.r.Route("/games/{id}", func(r chi.Router) {
		r.Use(s.requireHandle)
		r.Get("/", s.handleGetGame)
		r.Delete("/", s.handleDeleteGame)
		r.Post("/guesses", s.handleGuess)
		r.Get("/hints", s.handleHints)
		r.Get("/hints/latest", s.handleLatestHint)
		r.Get("/hints/{index}", s.handleHintAt)
	})

	if deps.Daily != nil {
		s.mountDaily(s.r)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", map[string]any{"path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog logs method, path, status and duration through the request logger.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("requestId", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// requireHandle verifies the bearer token against the {id} path parameter.
func (s *Server) requireHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "missing_token", nil)
			return
		}
		id, err := s.deps.Handles.Verify(tok)
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("verify handle")
			writeError(w, http.StatusUnauthorized, "invalid_token", nil)
			return
		}
		if id != chi.URLParam(r, "id") {
			writeError(w, http.StatusForbidden, "wrong_handle", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /games.
type newGameReq struct {
	Target       string `json:"target"`       // optional fixed target (testing, custom games)
	AttemptLimit *int   `json:"attemptLimit"` // optional; server default when absent
}
type newGameRes struct {
	Handle    string    `json:"handle"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Date      string    `json:"date,omitempty"` // daily games only
	Game      gameView  `json:"game"`
}

// handleNewGame creates a game (target from the picker unless given) and issues its handle.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !decodeBody(w, r, &req, true) {
		return
	}
	target := strings.TrimSpace(req.Target)
	if target == "" {
		target = s.deps.Picker.Pick()
	}
	s.createGame(w, r, target, req.AttemptLimit, "")
}

// createGame builds, registers and answers with a new game.
// A nil limit means the server default.
func (s *Server) createGame(w http.ResponseWriter, r *http.Request, target string, limit *int, date string) {
	n := s.deps.AttemptLimit
	if limit != nil {
		n = *limit
	}
	g, err := game.NewWithLimit(target, n)
	if err != nil {
		writeGameError(w, err)
		return
	}
	id, err := s.deps.Store.Create(r.Context(), g)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create game")
		writeError(w, http.StatusInternalServerError, "create_failed", nil)
		return
	}
	tok, exp, err := s.deps.Handles.Issue(id)
	if err != nil {
		_ = s.deps.Store.Delete(r.Context(), id)
		hlog.FromRequest(r).Error().Err(err).Msg("issue handle")
		writeError(w, http.StatusInternalServerError, "sign_failed", nil)
		return
	}
	hlog.FromRequest(r).Info().Str("gameId", id).Int("wordLength", g.WordLength()).
		Int("attemptLimit", g.AttemptLimit()).Msg("game created")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newGameRes{
		Handle:    id,
		Token:     tok,
		ExpiresAt: exp.UTC(),
		Date:      date,
		Game:      viewOf(g),
	})
}

// handleGetGame returns the full game view.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var v gameView
	if !s.withGame(w, r, func(g *game.Game) error { v = viewOf(g); return nil }) {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// handleDeleteGame destroys the handle.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.deps.Store.Delete(r.Context(), id); err != nil {
		writeGameError(w, err)
		return
	}
	hlog.FromRequest(r).Info().Str("gameId", id).Msg("game deleted")
	w.WriteHeader(http.StatusNoContent)
}

// guessReq/Res payloads for POST /games/{id}/guesses.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	State game.State `json:"state"`
	Hint  hintView   `json:"hint"`
}

// handleGuess submits a guess and returns the new state with its hint.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if !decodeBody(w, r, &req, false) {
		return
	}
	var res guessRes
	ok := s.withGame(w, r, func(g *game.Game) error {
		st, err := g.SubmitGuess(strings.TrimSpace(req.Guess))
		if err != nil {
			return err
		}
		latest, _ := g.LatestHint()
		res = guessRes{State: st, Hint: hintViewOf(latest)}
		return nil
	})
	if !ok {
		return
	}
	if res.State.Terminal() {
		hlog.FromRequest(r).Info().Str("gameId", chi.URLParam(r, "id")).
			Str("status", string(res.State.Status)).Msg("game over")
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleHints returns every hint, oldest first.
func (s *Server) handleHints(w http.ResponseWriter, r *http.Request) {
	var out []hintView
	if !s.withGame(w, r, func(g *game.Game) error { out = hintViewsOf(g); return nil }) {
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleLatestHint returns the newest hint, 404 before the first guess.
func (s *Server) handleLatestHint(w http.ResponseWriter, r *http.Request) {
	s.writeHint(w, r, func(g *game.Game) (hintView, bool) {
		h, ok := g.LatestHint()
		return hintViewOf(h), ok
	})
}

// handleHintAt returns the hint at a 0-based history index.
func (s *Server) handleHintAt(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_index", nil)
		return
	}
	s.writeHint(w, r, func(g *game.Game) (hintView, bool) {
		h, ok := g.HintFor(i)
		return hintViewOf(h), ok
	})
}

func (s *Server) writeHint(w http.ResponseWriter, r *http.Request, get func(*game.Game) (hintView, bool)) {
	var (
		v     hintView
		found bool
	)
	if !s.withGame(w, r, func(g *game.Game) error { v, found = get(g); return nil }) {
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no_such_hint", nil)
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// withGame runs fn on the path's game; on error it writes the response and returns false.
func (s *Server) withGame(w http.ResponseWriter, r *http.Request, fn func(*game.Game) error) bool {
	if err := s.deps.Store.With(r.Context(), chi.URLParam(r, "id"), fn); err != nil {
		writeGameError(w, err)
		return false
	}
	return true
}

// ------------------------------ errors -------------------------------------

// writeGameError maps engine and store errors to status codes.
func writeGameError(w http.ResponseWriter, err error) {
	var lerr *game.LengthMismatchError
	switch {
	case errors.As(err, &lerr):
		writeError(w, http.StatusBadRequest, "length_mismatch", map[string]any{
			"given":    lerr.Given,
			"expected": lerr.Expected,
		})
	case errors.Is(err, game.ErrAlreadyGuessed):
		writeError(w, http.StatusConflict, "already_guessed", nil)
	case errors.Is(err, game.ErrEmptyTarget):
		writeError(w, http.StatusBadRequest, "empty_target", nil)
	case errors.Is(err, game.ErrInvalidAttemptLimit):
		writeError(w, http.StatusBadRequest, "invalid_attempt_limit", nil)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", nil)
	default:
		log.Error().Err(err).Msg("unexpected game error")
		writeError(w, http.StatusInternalServerError, "internal", nil)
	}
}

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 4 << 10

// decodeBody reads a JSON body into v, answering 400 (or 413 when too large) on failure.
// With optional set, an empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	var tooBig *http.MaxBytesError
	switch {
	case err == nil, optional && errors.Is(err, io.EOF):
		return true
	case errors.As(err, &tooBig):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", map[string]any{"limit": tooBig.Limit})
	default:
		writeError(w, http.StatusBadRequest, "bad_json", nil)
	}
	return false
}

// writeError writes {"error": code, ...extra} with status.
func writeError(w http.ResponseWriter, status int, code string, extra map[string]any) {
	body := map[string]any{"error": code}
	for k, v := range extra {
		body[k] = v
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
