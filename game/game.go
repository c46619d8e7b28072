// Package game holds the pure rock/paper/scissors rules. Nothing in here
// touches rooms, sessions or the network.
package game

import "fmt"

// Choice is a player's move for one round.
type Choice string

const (
	ChoiceNone     Choice = ""
	ChoiceRock     Choice = "rock"
	ChoicePaper    Choice = "paper"
	ChoiceScissors Choice = "scissors"
)

// ParseChoice validates raw client input.
func ParseChoice(s string) (Choice, bool) {
	switch Choice(s) {
	case ChoiceRock, ChoicePaper, ChoiceScissors:
		return Choice(s), true
	}
	return ChoiceNone, false
}

// Outcome is the result of resolving one round between two players.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomePlayer1Wins
	OutcomePlayer2Wins
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayer1Wins:
		return "player1"
	case OutcomePlayer2Wins:
		return "player2"
	default:
		return "tie"
	}
}

// beats maps each choice to the choice it defeats.
var beats = map[Choice]Choice{
	ChoiceRock:     ChoiceScissors,
	ChoiceScissors: ChoicePaper,
	ChoicePaper:    ChoiceRock,
}

// Resolve maps two submitted choices to an outcome. Both choices must be set;
// the room state machine guarantees this, so an unset choice here is an
// invariant violation and panics.
func Resolve(a, b Choice) Outcome {
	if a == ChoiceNone || b == ChoiceNone {
		panic(fmt.Sprintf("game: Resolve called with unset choice (%q, %q)", a, b))
	}
	if a == b {
		return OutcomeTie
	}
	if beats[a] == b {
		return OutcomePlayer1Wins
	}
	return OutcomePlayer2Wins
}
