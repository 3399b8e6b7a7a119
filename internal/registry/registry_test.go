package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/slide-maze/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists(zz_stub_a) = false, expected true")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("ID() = %q, expected zz_stub_a", g.ID())
	}
	if Title("zz_stub_b") != "Stub zz_stub_b" {
		t.Errorf("Title() = %q, expected %q", Title("zz_stub_b"), "Stub zz_stub_b")
	}

	list := List()
	ia, ib := -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz_stub_a":
			ia = i
		case "zz_stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() should contain both stubs sorted by ID, got %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Title("no_such_game") != "no_such_game" {
		t.Error("Title of unknown ID should echo the ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}

type resizableStub struct {
	stubGame
	w, h int
}

func (g *resizableStub) Resize(w, h int) { g.w, g.h = w, h }

func TestResize(t *testing.T) {
	r := &resizableStub{stubGame: stubGame{id: "r"}}
	if !Resize(r, 100, 30) {
		t.Error("Resize() = false for a Resizer, expected true")
	}
	if r.w != 100 || r.h != 30 {
		t.Errorf("size = %dx%d, expected 100x30", r.w, r.h)
	}

	if Resize(&stubGame{id: "s"}, 100, 30) {
		t.Error("Resize() = true for a plain game, expected false")
	}
}
