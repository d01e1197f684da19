package registry

import (
	"testing"

	"github.com/vovakirdan/tui-reactor/internal/core"
)

type stubGame struct {
	id    string
	reset int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.reset++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered games should exist")
	}
	if Exists("stub-missing") {
		t.Error("unregistered game should not exist")
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	g2, _ := Create("stub-a")
	if g1 == g2 {
		t.Error("Create() should return a fresh instance each time")
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-list-z", func() Game { return &stubGame{id: "stub-list-z"} })
	Register("stub-list-m", func() Game { return &stubGame{id: "stub-list-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-list-m" {
			found = true
			if info.Title != "Stub stub-list-m" {
				t.Errorf("Title = %q, want %q", info.Title, "Stub stub-list-m")
			}
		}
	}
	if !found {
		t.Error("List() is missing a registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
