package registry

import (
	"testing"

	"github.com/vovakirdan/gnu-dash/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }

func (g stubGame) Title() string { return "Stub " + g.id }

func (g stubGame) Reset(core.RuntimeConfig) {}

func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }

func (g stubGame) Render(*core.Screen) {}

func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	posA, posZ := -1, -1
	for i, id := range ids {
		switch id {
		case "aa-stub":
			posA = i
		case "zz-stub":
			posZ = i
		}
	}
	if posA < 0 || posZ < 0 || posA > posZ {
		t.Fatalf("List() = %v, want aa-stub before zz-stub", ids)
	}
	if list[posA].Title != "Stub aa-stub" {
		t.Errorf("title = %q", list[posA].Title)
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("created %q", g.ID())
	}
	if !Exists("aa-stub") || Exists("missing") {
		t.Error("Exists reports wrong membership")
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown id succeeded")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
