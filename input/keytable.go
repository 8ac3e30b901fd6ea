package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// SpecialKeys holds non-rune keys (arrows, Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Intent
	// Runes holds printable bindings, case-insensitive for letters
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows/WASD move, space starts, p pauses
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyUp:     IntentMoveForward,
			tcell.KeyDown:   IntentMoveBack,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyEscape: IntentPause,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'a': IntentMoveLeft,
			'd': IntentMoveRight,
			'w': IntentMoveForward,
			's': IntentMoveBack,
			'h': IntentMoveLeft,
			'l': IntentMoveRight,
			'k': IntentMoveForward,
			'j': IntentMoveBack,
			' ': IntentStart,
			'p': IntentPause,
			'm': IntentMute,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent, unbound keys return IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
