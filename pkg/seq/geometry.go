package seq

// Geometry is the solved integer layout of a diagram, exposed for
// debugging and inspection. It serializes cleanly to JSON.
type Geometry struct {
	// Width and Height are the canvas dimensions in cells.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Participants lists the participant boxes in column order.
	Participants []ParticipantGeometry `json:"participants"`

	// Messages lists the message regions in input order.
	Messages []MessageGeometry `json:"messages"`
}

// ParticipantGeometry is the solved placement of one participant header
// box; the footer box uses the same rectangle at the canvas bottom.
type ParticipantGeometry struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Center int    `json:"center"`
}

// MessageGeometry is the solved placement of one message region.
type MessageGeometry struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Payload string `json:"payload,omitempty"`
	Style   string `json:"style"`
	Loop    bool   `json:"loop,omitempty"`
	Left    int    `json:"left"`
	Top     int    `json:"top"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Geometry solves the layout (if not already solved) and returns the
// integer coordinates of every element plus the canvas size.
func (l *Layout) Geometry() *Geometry {
	l.solve()

	geo := &Geometry{
		Participants: make([]ParticipantGeometry, 0, len(l.participants)),
		Messages:     make([]MessageGeometry, 0, len(l.messages)),
	}

	maxRight, maxBottom := 0, 0
	any := false
	for _, node := range l.participants {
		c := node.vars.resolve(l.solver)
		geo.Participants = append(geo.Participants, ParticipantGeometry{
			ID:     node.data.ID,
			Label:  node.data.Label,
			Left:   c.left,
			Top:    c.top,
			Width:  c.width,
			Height: c.height,
			Center: c.center(),
		})
		maxRight = max(maxRight, c.right())
		maxBottom = max(maxBottom, c.bottom())
		any = true
	}
	for _, node := range l.messages {
		c := node.vars.resolve(l.solver)
		geo.Messages = append(geo.Messages, MessageGeometry{
			Source:  node.source.ID,
			Target:  node.target.ID,
			Payload: node.payload,
			Style:   node.style.String(),
			Loop:    node.source.ID == node.target.ID,
			Left:    c.left,
			Top:     c.top,
			Width:   c.width,
			Height:  c.height,
		})
		maxRight = max(maxRight, c.right())
		maxBottom = max(maxBottom, c.bottom())
		any = true
	}
	if any {
		geo.Width = maxRight + 1
		geo.Height = maxBottom + 3
	}
	return geo
}

// DiagramGeometry parses source text and returns its solved geometry
// without rasterising it.
func DiagramGeometry(input string) (*Geometry, error) {
	diag, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return buildLayout(diag).Geometry(), nil
}
