package registry

import (
	"testing"

	"github.com/vovakirdan/geowars/internal/core"
)

type stubGame struct {
	id   string
	deps Deps
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func(d Deps) Game { return &stubGame{id: "stub_a", deps: d} })

	if !Exists("stub_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("stub_a", Deps{ConfigPath: "x.yaml"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.(*stubGame).deps.ConfigPath != "x.yaml" {
		t.Error("Create should pass deps to the factory")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" && info.Title == "Stub stub_a" {
			found = true
		}
	}
	if !found {
		t.Error("List should include the registered game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", Deps{}); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func(Deps) Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func(Deps) Game { return &stubGame{id: "stub_dup"} })
}
