package seq

// buildLayout translates a parsed Diagram into a Layout.
//
// Participant columns appear left-to-right in this order: first every
// identifier with an explicit alias declaration, in declaration order,
// then every remaining identifier in first-mention order across messages
// (source before target). Duplicates keep their first occurrence, so
// reordering alias lines reorders columns.
func buildLayout(diag *Diagram) *Layout {
	var order []string
	for _, a := range diag.Aliases {
		order = append(order, a.ID)
	}
	for _, m := range diag.Messages {
		order = append(order, m.Source, m.Target)
	}

	// Display labels: an explicit alias wins over the bare identifier,
	// and the first label bound to an identifier sticks.
	labels := make(map[string]string)
	for _, a := range diag.Aliases {
		if _, ok := labels[a.ID]; !ok {
			labels[a.ID] = a.Label
		}
	}
	for _, m := range diag.Messages {
		if _, ok := labels[m.Source]; !ok {
			labels[m.Source] = m.Source
		}
		if _, ok := labels[m.Target]; !ok {
			labels[m.Target] = m.Target
		}
	}

	participants := make(map[string]*Participant)
	layout := NewLayout()
	seen := make(map[string]bool)
	for _, id := range order {
		if seen[id] {
			continue
		}
		seen[id] = true
		p := &Participant{ID: id, Label: labels[id]}
		participants[id] = p
		layout.AddParticipant(p)
	}

	for _, m := range diag.Messages {
		layout.AddMessage(participants[m.Source], participants[m.Target], m.Payload, m.Style)
	}
	return layout
}

// Render lays out and rasterises a parsed Diagram.
func Render(diag *Diagram) string {
	return buildLayout(diag).Render()
}

// Transform compiles diagram source text into its rendered ASCII frame.
// It returns a *ParseError when the input does not match the grammar;
// the rendered frame is otherwise a pure function of the input.
func Transform(input string) (string, error) {
	diag, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Render(diag), nil
}
