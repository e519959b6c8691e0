// internal/httpserver/routes_daily.go
//
// HTTP routes for the "daily" game: one target word per UTC day.
// Exposes two endpoints under /daily:
//   - GET  /daily     → today's date key and word length
//   - POST /daily/new → start a game on today's word (same response as POST /games)
//
// Word selection is deterministic on date + salt (see the daily package).
// Playing the resulting game goes through the regular /games/{id} routes.

package httpserver

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// dailyInfoRes is returned by GET /daily.
type dailyInfoRes struct {
	Date       string `json:"date"`
	WordLength int    `json:"wordLength"`
}

// handleDailyInfo reports today's date key and the length of today's word.
func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	d := s.deps.Daily
	_ = json.NewEncoder(w).Encode(dailyInfoRes{
		Date:       d.Date(),
		WordLength: utf8.RuneCountInString(d.Pick()),
	})
}

// dailyNewReq is the optional body of POST /daily/new.
type dailyNewReq struct {
	AttemptLimit *int `json:"attemptLimit"` // server default when absent
}

// handleDailyNew starts a game on today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req dailyNewReq
	if !decodeBody(w, r, &req, true) {
		return
	}
	d := s.deps.Daily
	s.createGame(w, r, d.Pick(), req.AttemptLimit, d.Date())
}
