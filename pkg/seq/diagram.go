package seq

import "fmt"

// EdgeStyle selects how a message shaft is drawn.
type EdgeStyle int

const (
	// Continuous draws the shaft with solid box-drawing characters.
	Continuous EdgeStyle = iota
	// Dashed draws the shaft with ASCII dashes. Arrow heads stay solid.
	Dashed
)

// String returns the string representation of the EdgeStyle.
func (e EdgeStyle) String() string {
	switch e {
	case Continuous:
		return "Continuous"
	case Dashed:
		return "Dashed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// Alias binds a participant identifier to a display label.
type Alias struct {
	// ID is the participant identifier.
	ID string
	// Label is the display label rendered in the participant box.
	Label string
}

// Message is a directed, optionally labeled edge between two participants.
// Source and target may be equal, which renders as a self-loop.
type Message struct {
	// Source is the identifier of the sending participant.
	Source string
	// Target is the identifier of the receiving participant.
	Target string
	// Payload is the message label. It may be empty.
	Payload string
	// Style is the shaft style.
	Style EdgeStyle
}

// Diagram is the parsed form of a sequence diagram: an ordered list of
// alias declarations and an ordered list of messages. Message order is
// the vertical order of the rendered arrows.
type Diagram struct {
	Aliases  []Alias
	Messages []Message
}
