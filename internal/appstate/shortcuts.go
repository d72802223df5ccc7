package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Either Rune or Code is set, never both.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

const shortcutModifiers = key.ModControl | key.ModAlt | key.ModMeta

// keymap resolves key events to action names.
type keymap map[KeyShortcut]string

func (km keymap) register(action string, keys KeyboardShortcuts) {
	for _, sc := range keys.KeyboardShortcuts() {
		km[sc] = action
	}
}

// lookup matches on the rune first so layouts that move keys around still
// work, then on the physical key code. Shift only counts when a shortcut
// names it; otherwise the shifted key falls back to the plain binding.
func (km keymap) lookup(e key.Event) (string, bool) {
	mods := e.Modifiers & shortcutModifiers
	if e.Modifiers&key.ModShift != 0 {
		if a, ok := km.match(e, mods|key.ModShift); ok {
			return a, true
		}
	}
	return km.match(e, mods)
}

func (km keymap) match(e key.Event, mods key.Modifiers) (string, bool) {
	if e.Rune > 0 {
		if a, ok := km[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}]; ok {
			return a, true
		}
	}
	a, ok := km[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return a, ok
}
