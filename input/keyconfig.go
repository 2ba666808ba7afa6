package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownAction reports an action name with no Action behind it
var ErrUnknownAction = errors.New("unknown action")

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"quote":     '\'',
	"backtick":  '`',
}

// keyNames maps lowercase config names to special keys
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"esc":       tcell.KeyEscape,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
}

// ParseAction resolves an action name; "none" yields ActionNone
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a := ActionNone; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// KeyByName resolves a special key name such as "pgup" or "ctrl-c"
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyNameList returns every accepted special key name, sorted
func KeyNameList() []string {
	names := make([]string, 0, len(keyNames))
	for n := range keyNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// Merge overrides bindings from config tables of key → action name
// Binding a key to "none" removes it
func (km *KeyMap) Merge(runes, keys map[string]string) error {
	for keyStr, actionName := range runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return fmt.Errorf("[keys.runes] %w", err)
		}
		a, err := ParseAction(actionName)
		if err != nil {
			return fmt.Errorf("[keys.runes] key %q: %w", keyStr, err)
		}
		if a == ActionNone {
			delete(km.Runes, r)
		} else {
			km.Runes[r] = a
		}
	}

	for keyStr, actionName := range keys {
		k, ok := KeyByName(keyStr)
		if !ok {
			return fmt.Errorf("[keys.special] unknown key name %q, want one of %s", keyStr, strings.Join(KeyNameList(), ", "))
		}
		a, err := ParseAction(actionName)
		if err != nil {
			return fmt.Errorf("[keys.special] key %q: %w", keyStr, err)
		}
		if a == ActionNone {
			delete(km.Keys, k)
		} else {
			km.Keys[k] = a
		}
	}

	return nil
}
