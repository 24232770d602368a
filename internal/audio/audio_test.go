package audio

import "testing"

func TestDisabledCuesAreSilent(t *testing.T) {
	c := NewCues(false, "")

	// None of these may touch an audio device or panic.
	c.Play(CueInteract)
	c.Play(CueLoginFail)
	c.Play("unknown")
}

func TestSynthBeepWAVLayout(t *testing.T) {
	const ms = 50
	data := synthBeepWAV(440, ms)

	if len(data) < 44 {
		t.Fatalf("Expected at least a 44 byte header, got %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" {
		t.Errorf("Expected RIFF magic, got %q", data[0:4])
	}
	if string(data[8:12]) != "WAVE" {
		t.Errorf("Expected WAVE form, got %q", data[8:12])
	}
	if string(data[36:40]) != "data" {
		t.Errorf("Expected data chunk, got %q", data[36:40])
	}

	samples := sampleRate * ms / 1000
	want := 44 + samples*2
	if len(data) != want {
		t.Errorf("Expected %d bytes total, got %d", want, len(data))
	}
}

func TestSynthBeepWAVStartsQuiet(t *testing.T) {
	data := synthBeepWAV(440, 50)

	// The first sample of a sine is zero.
	if data[44] != 0 || data[45] != 0 {
		t.Errorf("Expected a zero first sample, got % x", data[44:46])
	}
}
