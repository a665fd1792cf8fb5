// Package progression is the per-level state machine: countdown, item
// completion, exit handling and the text shown to the player.
package progression

import (
	"fmt"
	"strings"

	"github.com/automoto/labhunt/config"
)

// LevelState is everything a level tracks between ticks. Functions in this
// package take a state and return the next one.
type LevelState struct {
	Level          int
	Countdown      int // seconds, never negative
	Phase          config.ProgressionStateID
	ItemsComplete  bool
	HasReachedExit bool
	GameOver       bool
}

// InitialCountdown is the starting time for a level, floored at zero.
func InitialCountdown(level int) int {
	return max(0, config.Level.BaseCountdown-level*config.Level.CountdownPerLevel)
}

func NewLevelState(level int) LevelState {
	return LevelState{
		Level:     level,
		Countdown: InitialCountdown(level),
		Phase:     config.StatePlaying,
	}
}

// Running reports whether the clock and pickups still matter.
func (s LevelState) Running() bool {
	return !s.GameOver && (s.Phase == config.StatePlaying || s.Phase == config.StateItemsComplete)
}

// Won reports a finished game on the final level.
func (s LevelState) Won() bool {
	return s.Phase == config.StateWin
}

// TickSecond removes one second from a running level. The clock keeps going
// after every item is found, until the exit is reached.
func TickSecond(s LevelState) LevelState {
	if !s.Running() {
		return s
	}
	s.Countdown = max(0, s.Countdown-1)
	return s
}

// Frame is what one evaluation needs from the rest of the level.
type Frame struct {
	Remaining    int  // items not yet found
	PlayerOnExit bool // player tile equals the exit marker tile
}

// Evaluate applies at most one transition.
func Evaluate(s LevelState, f Frame) LevelState {
	if !s.Running() {
		return s
	}

	switch {
	case s.Countdown <= 0:
		s.Countdown = 0
		s.Phase = config.StateTimeExpired
		s.GameOver = true
	case s.Phase == config.StateItemsComplete && f.PlayerOnExit:
		s.HasReachedExit = true
		if s.Level >= config.Level.FinalLevel {
			s.Phase = config.StateWin
			s.GameOver = true
		} else {
			s.Phase = config.StateLevelAdvance
		}
	case s.Phase == config.StatePlaying && f.Remaining == 0:
		s.Phase = config.StateItemsComplete
		s.ItemsComplete = true
	}
	return s
}

// Expired reports a clock that has run out. The level ends on the next
// Evaluate, and nothing may add time back before that.
func (s LevelState) Expired() bool {
	return s.Countdown <= 0
}

// CollectItem grants the item time bonus. The countdown has no upper cap.
func CollectItem(s LevelState) LevelState {
	if !s.Running() || s.Expired() {
		return s
	}
	s.Countdown += config.Level.ItemTimeBonus
	return s
}

// Advance discards the state and starts the next level.
func Advance(s LevelState) LevelState {
	return NewLevelState(s.Level + 1)
}

// Status lists the names still to find, or points at the exit once all are
// found.
func Status(s LevelState, remaining []string) string {
	if s.ItemsComplete {
		return fmt.Sprintf("Find the computer. Current Level: %d", s.Level)
	}
	var b strings.Builder
	b.WriteString("Find ")
	for _, name := range remaining {
		b.WriteString(name)
		b.WriteString(" \n")
	}
	fmt.Fprintf(&b, "Current Level: %d", s.Level)
	return b.String()
}

// FormatCountdown renders seconds as M:SS.
func FormatCountdown(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func CountdownText(s LevelState) string {
	return "Countdown: " + FormatCountdown(s.Countdown)
}

// Banner is the terminal message, or "" while the game goes on.
func Banner(s LevelState) string {
	switch s.Phase {
	case config.StateTimeExpired:
		return "GAME OVER"
	case config.StateWin:
		return "YOU WON!"
	}
	return ""
}
