// Package registry holds the maze variants the platform can start.
// Variant packages call Register from init(); the CLI, the menus and the
// SSH server only ever see IDs.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/slide-maze/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable variant as the TUI drives it: one Step per tick,
// one Render per frame. The run history reads State after each step.
type Game interface {
	// ID keys the variant in CLI arguments and stored runs.
	ID() string

	Title() string

	// Reset starts a session on a board built from cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the caller has cleared.
	Render(dst *core.Screen)

	// State must not advance the board.
	State() core.GameState
}

// Resizer is implemented by variants that keep their board across a
// terminal resize.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo is a row of the variant menu.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, not yet Reset, game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a variant. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns the variants ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title falls back to the ID for unregistered variants, so stored runs of
// a removed variant still get a heading.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Resize keeps g's board at the new terminal size when g is a Resizer and
// reports whether it did. Callers Reset the other variants.
func Resize(g Game, w, h int) bool {
	r, ok := g.(Resizer)
	if ok {
		r.Resize(w, h)
	}
	return ok
}
