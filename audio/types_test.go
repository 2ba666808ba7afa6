package audio

import "testing"

// TestCueValues pins the cue order used for counter names
func TestCueValues(t *testing.T) {
	if CueZoomIn != 0 {
		t.Errorf("Expected CueZoomIn=0, got %d", CueZoomIn)
	}
	if cueCount != 6 {
		t.Errorf("Expected 6 cues, got %d", cueCount)
	}
}

func TestCueNamesUnique(t *testing.T) {
	seen := make(map[string]Cue)
	for c := Cue(0); c < cueCount; c++ {
		name := c.String()
		if name == "" || name == "unknown" {
			t.Errorf("Cue %d has no name", c)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("Cues %d and %d share name %q", prev, c, name)
		}
		seen[name] = c
	}
	if cueCount.String() != "unknown" {
		t.Errorf("Out-of-range cue named %q", cueCount.String())
	}
}
