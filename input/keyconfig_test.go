package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		want    Action
		wantErr bool
	}{
		{"pan_up", ActionPanUp, false},
		{" Zoom_In ", ActionZoomIn, false},
		{"mark_jump", ActionMarkJump, false},
		{"none", ActionNone, false},
		{"fly", ActionNone, true},
		{"", ActionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAction) {
					t.Errorf("Expected ErrUnknownAction, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseAction(%q) = %v, %v", tt.name, got, err)
			}
		})
	}
}

func TestKeyMapMerge(t *testing.T) {
	km := DefaultKeyMap()
	err := km.Merge(
		map[string]string{"w": "pan_up", "k": "none", "space": "reset"},
		map[string]string{"F1": "quit", "esc": "none"},
	)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"New rune", runeEv('w'), ActionPanUp},
		{"Removed rune", runeEv('k'), ActionNone},
		{"Alias", runeEv(' '), ActionReset},
		{"Untouched rune", runeEv('j'), ActionPanDown},
		{"New special", keyEv(tcell.KeyF1), ActionQuit},
		{"Removed special", keyEv(tcell.KeyEscape), ActionNone},
		{"Untouched special", keyEv(tcell.KeyUp), ActionPanUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyMapMergeErrors(t *testing.T) {
	tests := []struct {
		name  string
		runes map[string]string
		keys  map[string]string
	}{
		{"Multi-char rune", map[string]string{"ab": "pan_up"}, nil},
		{"Unknown rune action", map[string]string{"w": "jump"}, nil},
		{"Unknown key name", nil, map[string]string{"hyper": "quit"}},
		{"Unknown key action", nil, map[string]string{"up": "ascend"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := DefaultKeyMap().Merge(tt.runes, tt.keys); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestKeyNameList(t *testing.T) {
	names := KeyNameList()
	if len(names) == 0 {
		t.Fatal("No key names")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Not sorted at %d", i)
		}
	}
	if _, ok := KeyByName("PgUp"); !ok {
		t.Error("KeyByName should be case-insensitive")
	}
}

func TestMergeUnknownKeyListsNames(t *testing.T) {
	err := DefaultKeyMap().Merge(nil, map[string]string{"hyper": "quit"})
	if err == nil {
		t.Fatal("Expected error for unknown key name")
	}
	for _, name := range []string{"hyper", "pgup", "f1"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Error %q does not mention %q", err, name)
		}
	}
}
