package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-onet/internal/core"
)

type stubGame struct {
	id, title string
	resized   [2]int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist after Register")
	}
	if got := Title("zz_stub"); got != "Stub" {
		t.Errorf("Title = %q, want Stub", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title of unknown id = %q, want the id", got)
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}

	r, ok := g.(Resizer)
	if !ok {
		t.Fatal("stub should satisfy Resizer")
	}
	r.Resize(100, 40)
	if g.(*stubGame).resized != [2]int{100, 40} {
		t.Errorf("Resize not forwarded: %v", g.(*stubGame).resized)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List should include zz_stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create unknown: err = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
