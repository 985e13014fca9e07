package game

import "fmt"

// ConfigError reports construction input that cannot produce a playable
// game. It is fatal: there is no game instance to recover.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

// NoCandidateError means the engine found no legal word of its own to play.
// This is the natural "engine concedes" end of a game, not a fault.
// Mora is the starting sound the engine was looking for.
type NoCandidateError struct {
	Mora rune
}

func (e *NoCandidateError) Error() string {
	return fmt.Sprintf("no playable word starting with %q", e.Mora)
}

// UnknownWordError means the submitted text is not in the vocabulary.
// Callers may treat it as recoverable and re-prompt the player.
type UnknownWordError struct {
	Text string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q", e.Text)
}

// MoveReason identifies which game rule an invalid move broke.
type MoveReason int

const (
	ReasonContinuity   MoveReason = iota // does not start with the required sound
	ReasonRepeat                         // word was already played
	ReasonPartOfSpeech                   // word is not a noun
	ReasonTerminal                       // word ends in ん
)

func (r MoveReason) String() string {
	switch r {
	case ReasonContinuity:
		return "continuity"
	case ReasonRepeat:
		return "repeat"
	case ReasonPartOfSpeech:
		return "part-of-speech"
	case ReasonTerminal:
		return "terminal"
	}
	return "unknown"
}

// InvalidMoveError reports a player move that broke a game rule.
// Text is the offending input as submitted; Mora is the required starting
// sound and is set only for continuity failures.
type InvalidMoveError struct {
	Reason MoveReason
	Text   string
	Mora   rune
}

func (e *InvalidMoveError) Error() string {
	switch e.Reason {
	case ReasonContinuity:
		return fmt.Sprintf("%q does not start with %q", e.Text, e.Mora)
	case ReasonRepeat:
		return fmt.Sprintf("%q was already played", e.Text)
	case ReasonPartOfSpeech:
		return fmt.Sprintf("%q is not a noun", e.Text)
	case ReasonTerminal:
		return fmt.Sprintf("%q ends in ん", e.Text)
	}
	return fmt.Sprintf("invalid move %q", e.Text)
}
