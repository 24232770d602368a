package player

import (
	"testing"

	"chosenoffset.com/embervale/internal/geom"
	"chosenoffset.com/embervale/internal/input"
	"chosenoffset.com/embervale/internal/signal"
)

type fakeSprite struct {
	plays []string
}

func (f *fakeSprite) Play(clip string) {
	f.plays = append(f.plays, clip)
}

func (f *fakeSprite) last() string {
	if len(f.plays) == 0 {
		return ""
	}
	return f.plays[len(f.plays)-1]
}

func newTestAnimator() (*Animator, *fakeSource, *fakeSprite, *signal.Hub) {
	hub := signal.NewHub()
	src := newFakeSource()
	sprite := &fakeSprite{}
	return NewAnimator(hub, src, sprite), src, sprite, hub
}

func TestClipForMotion(t *testing.T) {
	tests := []struct {
		name   string
		motion geom.Vec2
		want   string
	}{
		{"right", geom.Vec2{X: Speed}, "walk right"},
		{"left", geom.Vec2{X: -Speed}, "walk left"},
		{"up", geom.Vec2{Y: -Speed}, "walk upwards"},
		{"down", geom.Vec2{Y: Speed}, "walk downwards"},
		{"diagonal right wins over up", geom.Vec2{X: Speed, Y: -Speed}, "walk right"},
		{"diagonal left wins over down", geom.Vec2{X: -Speed, Y: Speed}, "walk left"},
		{"zero motion idles facing front", geom.Vec2{}, "idle front"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim, _, sprite, _ := newTestAnimator()

			anim.OnPlayerAnimate(tt.motion)
			if sprite.last() != tt.want {
				t.Errorf("Expected clip %q, got %q", tt.want, sprite.last())
			}
		})
	}
}

func TestIdleKeepsLastWalkFacing(t *testing.T) {
	anim, _, sprite, _ := newTestAnimator()

	anim.OnPlayerAnimate(geom.Vec2{X: Speed})
	anim.OnPlayerAnimate(geom.Vec2{})
	if sprite.last() != "idle right" {
		t.Errorf("Expected 'idle right' after walking right, got %q", sprite.last())
	}
	if anim.Facing() != DirectionRight {
		t.Errorf("Expected facing Right, got %v", anim.Facing())
	}

	anim.OnPlayerAnimate(geom.Vec2{Y: -Speed})
	anim.OnPlayerAnimate(geom.Vec2{})
	if sprite.last() != "idle back" {
		t.Errorf("Expected 'idle back' after walking up, got %q", sprite.last())
	}

	// Repeated idle frames never change facing.
	anim.OnPlayerAnimate(geom.Vec2{})
	anim.OnPlayerAnimate(geom.Vec2{})
	if sprite.last() != "idle back" {
		t.Errorf("Expected facing to hold through idle frames, got %q", sprite.last())
	}
}

func TestReadyShowsIdleClipForSavedFacing(t *testing.T) {
	anim, _, sprite, _ := newTestAnimator()

	anim.Ready(DirectionLeft)

	if len(sprite.plays) != 1 || sprite.plays[0] != "idle left" {
		t.Errorf("Expected a single 'idle left' play, got %v", sprite.plays)
	}
	if anim.Facing() != DirectionLeft {
		t.Errorf("Expected facing Left, got %v", anim.Facing())
	}
}

func TestMenuPressReportsFacing(t *testing.T) {
	anim, src, _, hub := newTestAnimator()

	var got []Direction
	if err := hub.Connect(SignalDirection, func(args ...any) {
		if len(args) == 1 {
			if d, ok := args[0].(Direction); ok {
				got = append(got, d)
			}
		}
	}); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	anim.OnPlayerAnimate(geom.Vec2{X: -Speed})

	anim.Process()
	if len(got) != 0 {
		t.Fatalf("Expected no report without a menu press, got %v", got)
	}

	src.just[input.ActionMenu] = true
	anim.Process()
	if len(got) != 1 {
		t.Fatalf("Expected one report, got %v", got)
	}
	if got[0] != DirectionLeft {
		t.Errorf("Expected DirectionLeft reported, got %v", got[0])
	}
}

func TestClipNames(t *testing.T) {
	idle := map[Direction]string{
		DirectionDownwards: "idle front",
		DirectionUpwards:   "idle back",
		DirectionLeft:      "idle left",
		DirectionRight:     "idle right",
	}
	walk := map[Direction]string{
		DirectionDownwards: "walk downwards",
		DirectionUpwards:   "walk upwards",
		DirectionLeft:      "walk left",
		DirectionRight:     "walk right",
	}

	for d, want := range idle {
		if got := IdleClip(d); got != want {
			t.Errorf("Expected IdleClip(%v)=%q, got %q", d, want, got)
		}
	}
	for d, want := range walk {
		if got := WalkClip(d); got != want {
			t.Errorf("Expected WalkClip(%v)=%q, got %q", d, want, got)
		}
	}
}
