package httpserver

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wordgrid/go-server/internal/store"
	"github.com/wordgrid/go-server/internal/words"
	"github.com/wordgrid/go-server/internal/wordsearch"
)

// newTestServer wires a Server against an in-memory SQLite DB with the
// real schema applied.
func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init failed: %v", err)
	}
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	schema, err := os.ReadFile("../../sql/0001_init.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	mem := store.NewMemoryStore()
	return New(mem, db), mem
}

func doJSON(t *testing.T, s *Server, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
}

func TestNewPuzzleHidesGeometryAndBonus(t *testing.T) {
	s, _ := newTestServer(t)
	seed := int64(42)
	rec := doJSON(t, s, http.MethodPost, "/puzzle/new",
		map[string]any{"difficulty": "easy", "theme": "space", "seed": seed}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("new puzzle = %d: %s", rec.Code, rec.Body.String())
	}
	var dto puzzleDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Size != 8 || len(dto.Cells) != 64 {
		t.Fatalf("expected flattened 8x8 grid, got size %d with %d cells", dto.Size, len(dto.Cells))
	}
	if dto.State != "playing" || dto.PuzzleID == "" {
		t.Fatalf("unexpected session fields: %+v", dto)
	}
	if len(dto.Words) == 0 || len(dto.Words) > 5 {
		t.Fatalf("expected 1-5 visible words, got %d", len(dto.Words))
	}
	for _, w := range dto.Words {
		if w.Start != nil || w.End != nil || w.Direction != "" {
			t.Fatalf("unfound word %q leaked geometry", w.Text)
		}
		if w.IsBonus {
			t.Fatalf("bonus word %q leaked into visible list", w.Text)
		}
	}
}

func TestSelectRoundTrip(t *testing.T) {
	s, mem := newTestServer(t)
	seed := int64(7)
	rec := doJSON(t, s, http.MethodPost, "/puzzle/new",
		map[string]any{"difficulty": "easy", "theme": "animals", "seed": seed}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("new puzzle = %d", rec.Code)
	}
	var dto puzzleDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &dto)

	g, err := mem.Get(context.Background(), dto.PuzzleID)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if len(g.Grid.Words) == 0 {
		t.Fatal("no words placed")
	}
	target := g.Grid.Words[0]
	dr, dc := target.Direction.Vector()
	path := make([]wordsearch.Position, len(target.Text))
	for i := range path {
		path[i] = wordsearch.Position{Row: target.Start.Row + i*dr, Col: target.Start.Col + i*dc}
	}

	rec = doJSON(t, s, http.MethodPost, "/puzzle/select",
		map[string]any{"puzzleId": dto.PuzzleID, "cells": path}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("select = %d: %s", rec.Code, rec.Body.String())
	}
	var res selectRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Matched == nil || res.Matched.Text != target.Text {
		t.Fatalf("expected match for %q, got %+v", target.Text, res.Matched)
	}
	if res.Matched.Start == nil || res.Matched.End == nil {
		t.Fatal("found word should reveal geometry")
	}
	if res.FoundWords != 1 {
		t.Fatalf("foundWords = %d, want 1", res.FoundWords)
	}

	// A repeat of the same path must not match again.
	rec = doJSON(t, s, http.MethodPost, "/puzzle/select",
		map[string]any{"puzzleId": dto.PuzzleID, "cells": path}, nil)
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if rec.Code == http.StatusOK && res.Matched != nil {
		t.Fatal("already-found word matched again")
	}
}

func TestNewPuzzleRejectsUnknownInputs(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := doJSON(t, s, http.MethodPost, "/puzzle/new",
		map[string]any{"difficulty": "nightmare"}, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown difficulty = %d", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodPost, "/puzzle/new",
		map[string]any{"theme": "no_such_theme"}, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown theme = %d", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodGet, "/puzzle/missing", nil, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("missing puzzle = %d", rec.Code)
	}
}

func TestSignupLoginMe(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/auth/signup",
		map[string]string{"username": "player_one", "password": "supersecret"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("signup = %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("signup set no cookies")
	}

	rec = doJSON(t, s, http.MethodGet, "/auth/me", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("me = %d: %s", rec.Code, rec.Body.String())
	}

	// Bad password rejected.
	rec = doJSON(t, s, http.MethodPost, "/auth/login",
		map[string]string{"username": "player_one", "password": "wrongwrong"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d", rec.Code)
	}

	// Stats start at zero.
	rec = doJSON(t, s, http.MethodGet, "/stats/me", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats = %d", rec.Code)
	}
	var stats map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &stats)
	if stats["puzzlesPlayed"].(float64) != 0 {
		t.Fatalf("fresh user has plays: %v", stats)
	}
}

func TestBonusPool(t *testing.T) {
	t1 := tiers["easy"] // range 4-6, grid 8
	pool := bonusPool([]string{"CAT", "PLANET", "ASTEROID", "TELESCOPE", "UNIVERSE"}, t1, 2)
	// Longer than 6, at most 8 letters: ASTEROID and UNIVERSE qualify;
	// TELESCOPE is longer than the grid side.
	if len(pool) != 2 || pool[0] != "ASTEROID" || pool[1] != "UNIVERSE" {
		t.Fatalf("bonusPool = %v", pool)
	}
}
