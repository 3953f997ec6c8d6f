// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Puzzle" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start the daily puzzle (creates or reuses session)
//   - POST /daily/select      → submit a selection path for today's puzzle
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on
// completion. The grid is deterministic per date: seed and theme both
// derive from HMAC(salt, date), so every player races the same puzzle.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wordgrid/go-server/internal/daily"
	"github.com/wordgrid/go-server/internal/game"
	"github.com/wordgrid/go-server/internal/words"
	"github.com/wordgrid/go-server/internal/wordsearch"
)

// dailyDifficulty is the tier every daily puzzle uses.
const dailyDifficulty = "medium"

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily puzzle.
type dailySession struct {
	Game     *game.Game
	UserID   string
	Date     string
	Start    time.Time
	Recorded bool // result row written
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/select", dd.handleSelect)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// todayParams returns today's date key, grid seed, and theme.
func (d *dailyServer) todayParams() (date string, seed int64, theme string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	seed = daily.Seed(now, d.salt)
	names := words.Themes()
	if len(names) == 0 {
		return date, seed, ""
	}
	theme = names[daily.ThemeIndex(now, d.salt, len(names))]
	return date, seed, theme
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	Date   string     `json:"date"`
	Played bool       `json:"played"`
	Puzzle *puzzleDTO `json:"puzzle,omitempty"`
}

// handleNew creates or reuses the daily session for the current date.
// - If the user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return the grid.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, seed, theme := d.todayParams()
	if theme == "" {
		http.Error(w, `{"error":"no_themes"}`, http.StatusInternalServerError)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		list, _ := words.Theme(theme)
		t := tiers[dailyDifficulty]
		g, err := game.New(dailyDifficulty, theme, t.Config, list, bonusPool(list, t, t.BonusWords), seed)
		if err != nil {
			d.mu.Unlock()
			http.Error(w, `{"error":"generate_failed"}`, http.StatusInternalServerError)
			return
		}
		sess = &dailySession{Game: g, UserID: uid, Date: date, Start: time.Now()}
		d.sessions[key] = sess
	}
	d.mu.Unlock()

	dto := toPuzzleDTO(sess.Game)
	_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: false, Puzzle: &dto})
}

// -----------------------------------------------------------------------------
// /daily/select

// dailySelectReq mirrors /puzzle/select but is keyed by date, not
// session ID: there is exactly one daily session per user per day.
type dailySelectReq struct {
	Cells []wordsearch.Position `json:"cells"`
}

// handleSelect applies a selection path to today's daily session.
// On completion it persists the result row exactly once.
func (d *dailyServer) handleSelect(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailySelectReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	date, _, _ := d.todayParams()
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	matched, state, err := sess.Game.ApplySelection(p.Cells)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	res := selectRes{State: state, FoundWords: sess.Game.FoundWords, TotalWords: len(sess.Game.Grid.Words)}
	if matched != nil {
		dto := toWordDTO(*matched)
		dto.Found = true
		start, end := matched.Start, matched.End
		dto.Start, dto.End, dto.Direction = &start, &end, matched.Direction
		res.Matched = &dto
	}

	if state == "completed" {
		d.mu.Lock()
		record := !sess.Recorded
		sess.Recorded = true
		d.mu.Unlock()
		if record {
			elapsed := int(time.Since(sess.Start).Milliseconds())
			_ = d.store.InsertResult(r.Context(), daily.Result{
				UserID:     uid,
				Date:       date,
				Theme:      sess.Game.Theme,
				WordsFound: sess.Game.FoundWords,
				ElapsedMs:  elapsed,
			})
		}
	}

	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.todayParams()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
