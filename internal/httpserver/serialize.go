// internal/httpserver/serialize.go
//
// Wire shapes for puzzle sessions. The engine hands over a 2D cell
// matrix; flattening it for transport is this layer's job, not the
// engine's. Word geometry (start/end/direction) is withheld until a
// word is found, so clients cannot read placements out of the payload.

package httpserver

import (
	"github.com/wordgrid/go-server/internal/game"
	"github.com/wordgrid/go-server/internal/wordsearch"
)

// cellDTO is one flattened grid cell.
type cellDTO struct {
	Letter  string `json:"letter"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	IsFound bool   `json:"isFound"`
}

// wordDTO is the client-visible view of a placed word. Geometry fields
// are only populated once the word is found.
type wordDTO struct {
	ID        string               `json:"id"`
	Text      string               `json:"text"`
	Found     bool                 `json:"found"`
	Color     string               `json:"color"`
	IsBonus   bool                 `json:"isBonus,omitempty"`
	Start     *wordsearch.Position `json:"startPos,omitempty"`
	End       *wordsearch.Position `json:"endPos,omitempty"`
	Direction wordsearch.Direction `json:"direction,omitempty"`
}

// puzzleDTO is the full session snapshot returned by /puzzle/new and
// /puzzle/{id}.
type puzzleDTO struct {
	PuzzleID   string    `json:"puzzleId"`
	Difficulty string    `json:"difficulty"`
	Theme      string    `json:"theme"`
	Size       int       `json:"size"`
	Cells      []cellDTO `json:"cells"`
	Words      []wordDTO `json:"words"`
	FoundWords int       `json:"foundWords"`
	State      string    `json:"state"`
}

// toWordDTO converts a placed word, revealing geometry only when found.
func toWordDTO(w wordsearch.PlacedWord) wordDTO {
	dto := wordDTO{ID: w.ID, Text: w.Text, Found: w.Found, Color: w.Color, IsBonus: w.IsBonus}
	if w.Found {
		start, end := w.Start, w.End
		dto.Start, dto.End, dto.Direction = &start, &end, w.Direction
	}
	return dto
}

// toPuzzleDTO flattens a session for transport. Unfound bonus words
// are omitted entirely: they are a surprise, not a checklist entry.
func toPuzzleDTO(g *game.Game) puzzleDTO {
	dto := puzzleDTO{
		PuzzleID:   g.ID,
		Difficulty: g.Difficulty,
		Theme:      g.Theme,
		Size:       g.Grid.Size,
		FoundWords: g.FoundWords,
		State:      "playing",
	}
	if g.Finished {
		dto.State = "completed"
	}
	dto.Cells = make([]cellDTO, 0, g.Grid.Size*g.Grid.Size)
	for _, row := range g.Grid.Cells {
		for _, c := range row {
			dto.Cells = append(dto.Cells, cellDTO{Letter: c.Letter, Row: c.Row, Col: c.Col, IsFound: c.IsFound})
		}
	}
	dto.Words = make([]wordDTO, 0, len(g.Grid.Words))
	for _, w := range g.Grid.Words {
		if w.IsBonus && !w.Found {
			continue
		}
		dto.Words = append(dto.Words, toWordDTO(w))
	}
	return dto
}
