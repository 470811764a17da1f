// Package history keeps conversation context within a bounded window,
// condensing older turns into a short summary instead of dropping them.
package history

import "techstore-ai-be/pkg/store"

// MaxRecentTurns is the number of most recent turns sent verbatim to the
// model; anything older is summarized.
const MaxRecentTurns = 12

type Window struct {
	Recent   []store.Turn
	Overflow []store.Turn
}

// Optimize splits history into the recent window and the overflow that
// precedes it. Histories at or under the limit pass through untouched.
func Optimize(history []store.Turn, maxTurns int) Window {
	if len(history) <= maxTurns {
		return Window{Recent: history}
	}
	return Window{
		Recent:   history[len(history)-maxTurns:],
		Overflow: history[:len(history)-maxTurns],
	}
}
