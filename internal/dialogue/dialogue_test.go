package dialogue

import (
	"testing"

	"chosenoffset.com/embervale/internal/input"
	"chosenoffset.com/embervale/internal/signal"
)

type fakeSource struct {
	just map[input.Action]bool
}

func (f *fakeSource) Pressed(a input.Action) bool     { return false }
func (f *fakeSource) JustPressed(a input.Action) bool { return f.just[a] }

func newTestBox() (*Box, *fakeSource, *signal.Hub) {
	hub := signal.NewHub()
	src := &fakeSource{just: make(map[input.Action]bool)}
	return NewBox(hub, src), src, hub
}

func countSignal(t *testing.T, hub *signal.Hub, name string) *int {
	t.Helper()
	count := 0
	if err := hub.Connect(name, func(args ...any) { count++ }); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	return &count
}

func TestOpenEmitsStarted(t *testing.T) {
	box, _, hub := newTestBox()
	started := countSignal(t, hub, SignalStarted)

	box.Open("Sign", []string{"Hello.", "Bye."})

	if *started != 1 {
		t.Errorf("Expected 1 dialogue_started emission, got %d", *started)
	}
	if box.Status() != StatusActive {
		t.Errorf("Expected StatusActive, got %v", box.Status())
	}
	if box.Title() != "Sign" {
		t.Errorf("Expected title 'Sign', got %q", box.Title())
	}
	if box.Line() != "Hello." {
		t.Errorf("Expected first line 'Hello.', got %q", box.Line())
	}
}

func TestOpenWithNoLinesShowsTitle(t *testing.T) {
	box, _, _ := newTestBox()

	box.Open("Old Well", nil)

	if box.Line() != "Old Well" {
		t.Errorf("Expected title as only line, got %q", box.Line())
	}
}

func TestOpeningPressDoesNotAdvance(t *testing.T) {
	box, src, _ := newTestBox()
	box.Open("Sign", []string{"One.", "Two."})

	// The same frame's interact press is still down when the box first
	// updates. It must not count as a page turn.
	src.just[input.ActionInteract] = true
	box.Update()
	if box.Line() != "One." {
		t.Errorf("Expected opening press ignored, got line %q", box.Line())
	}

	box.Update()
	if box.Line() != "Two." {
		t.Errorf("Expected advance to 'Two.', got %q", box.Line())
	}
}

func TestAdvanceAndFinish(t *testing.T) {
	box, src, hub := newTestBox()
	finished := countSignal(t, hub, SignalFinished)

	advances := 0
	box.OnAdvance = func() { advances++ }

	box.Open("Sign", []string{"One.", "Two."})
	box.Update() // consume the opening press guard

	src.just[input.ActionInteract] = true
	box.Update()
	if box.Line() != "Two." {
		t.Fatalf("Expected line 'Two.', got %q", box.Line())
	}
	if advances != 1 {
		t.Errorf("Expected OnAdvance once, got %d", advances)
	}

	box.Update()
	if box.Status() != StatusInactive {
		t.Errorf("Expected box closed past last line, got %v", box.Status())
	}
	if *finished != 1 {
		t.Errorf("Expected 1 dialogue_finished emission, got %d", *finished)
	}
	if box.Line() != "" {
		t.Errorf("Expected empty line after close, got %q", box.Line())
	}
}

func TestOtherActionsDoNotAdvance(t *testing.T) {
	box, src, _ := newTestBox()
	box.Open("Sign", []string{"One.", "Two."})
	box.Update()

	src.just[input.ActionMenu] = true
	box.Update()

	if box.Line() != "One." {
		t.Errorf("Expected menu press to not advance, got %q", box.Line())
	}
}

func TestCloseOnInactiveBoxDoesNotEmit(t *testing.T) {
	box, _, hub := newTestBox()
	finished := countSignal(t, hub, SignalFinished)

	box.Close()

	if *finished != 0 {
		t.Errorf("Expected no dialogue_finished emission, got %d", *finished)
	}
}
