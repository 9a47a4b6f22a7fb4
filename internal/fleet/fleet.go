// Package fleet reads hand-made piece layouts from YAML.
package fleet

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/battleship-board/internal/apperror"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

var ErrPlayerCount = errors.New("fleet must describe exactly two players")

// Placement - one piece request: kind, anchor and clockwise rotation.
type Placement struct {
	Kind     string `yaml:"kind"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Rotation int    `yaml:"rotation"`
}

type Side struct {
	Pieces []Placement `yaml:"pieces"`
}

type Fleet struct {
	Size          int    `yaml:"size"`
	FirstAttacker int    `yaml:"first-attacker"`
	Players       []Side `yaml:"players"`
}

// Request is a validated placement.
type Request struct {
	Kind     entity.PieceKind
	X, Y     int
	Rotation int
}

// Piece builds the piece described by the request.
func (r Request) Piece() *entity.Piece {
	return entity.NewPiece(r.Kind, r.X, r.Y, r.Rotation)
}

// Load reads and parses a fleet file.
func Load(path string) (*Fleet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read fleet file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Fleet, error) {
	var fleet Fleet
	if err := yaml.Unmarshal(data, &fleet); err != nil {
		return nil, fmt.Errorf("could not parse fleet: %w", err)
	}

	return &fleet, nil
}

// Requests validates the layout of one player. Anchors are not range checked:
// the board reports pieces that do not fit.
func (that *Fleet) Requests(player int) ([]Request, error) {
	if len(that.Players) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, len(that.Players))
	}

	side := that.Players[player]
	if len(side.Pieces) == 0 {
		return nil, fmt.Errorf("%w: player %d", apperror.ErrEmptyFleet, player)
	}

	requests := make([]Request, 0, len(side.Pieces))
	for i, p := range side.Pieces {
		kind, err := entity.ParseKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("player %d piece %d: %w", player, i, err)
		}

		rotation, err := entity.NormalizeRotation(p.Rotation)
		if err != nil {
			return nil, fmt.Errorf("player %d piece %d: %w", player, i, err)
		}

		requests = append(requests, Request{Kind: kind, X: p.X, Y: p.Y, Rotation: rotation})
	}

	return requests, nil
}

// Counts returns how many pieces of each kind the player asks for, indexed like entity.Kinds.
func Counts(requests []Request) [len(entity.Kinds)]int {
	var counts [len(entity.Kinds)]int
	for _, r := range requests {
		counts[r.Kind.Index()]++
	}

	return counts
}
