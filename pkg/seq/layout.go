package seq

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/seqdiag/pkg/canvas"
	"github.com/dshills/seqdiag/pkg/solver"
)

// Participant is a named column in the diagram. It renders as a box at
// the top and a matching box at the bottom, connected by a lifeline.
// Participants are identified by ID; every message referencing the same
// identifier shares the same column.
type Participant struct {
	ID    string
	Label string
}

// gc counts extended grapheme clusters, the unit of cell width.
func gc(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// naturalWidth is the minimum box width: the label plus the frame and
// its padding.
func (p *Participant) naturalWidth() int {
	return gc(p.Label) + 5
}

// naturalHeight is the fixed box height.
func (p *Participant) naturalHeight() int {
	return 3
}

// drawBox rasterises the participant box filling the region.
func (p *Participant) drawBox(r *canvas.Region) error {
	w := r.Bounds().Width
	bar := strings.Repeat("─", w-2)
	rows := []string{
		"┌" + bar + "┐",
		"│ " + p.Label + strings.Repeat(" ", w-gc(p.Label)-3) + "│",
		"└" + bar + "┘",
	}
	return r.Draw(0, 0, rows)
}

// elemVars is the common set of solver variables of a laid-out element.
type elemVars struct {
	left, top, width, height solver.Variable
}

func newElemVars(s *solver.Solver) elemVars {
	return elemVars{
		left:   s.NewVar(),
		top:    s.NewVar(),
		width:  s.NewVar(),
		height: s.NewVar(),
	}
}

func (v elemVars) rightExpr() solver.Expr {
	return solver.V(v.left).Plus(solver.V(v.width))
}

func (v elemVars) bottomExpr() solver.Expr {
	return solver.V(v.top).Plus(solver.V(v.height))
}

func (v elemVars) centerExpr() solver.Expr {
	return solver.V(v.left).Plus(solver.V(v.width).Times(0.5))
}

// coords is the integer read-out of an element's solved variables.
type coords struct {
	left, top, width, height int
}

func (v elemVars) resolve(s *solver.Solver) coords {
	return coords{
		left:   s.IntValue(v.left),
		top:    s.IntValue(v.top),
		width:  s.IntValue(v.width),
		height: s.IntValue(v.height),
	}
}

func (c coords) right() int  { return c.left + c.width }
func (c coords) bottom() int { return c.top + c.height }
func (c coords) center() int { return c.left + c.width/2 }

// participantNode couples a participant with its geometry variables.
type participantNode struct {
	vars elemVars
	data *Participant
}

// messageNode couples a message with its geometry variables.
type messageNode struct {
	vars    elemVars
	source  *Participant
	target  *Participant
	payload string
	style   EdgeStyle
}

// messageCtx carries the participant column indices a message needs to
// pick its arrow direction at draw time.
type messageCtx struct {
	sourceIdx int
	targetIdx int
}

func (c messageCtx) isLoop() bool {
	return c.sourceIdx == c.targetIdx
}

// naturalWidth is the minimum region width for the message. A loop
// reserves room for its glyph plus the payload to the right of it. A
// directional arrow reserves the payload plus spacing, rounded up to an
// even width; a payload with an odd grapheme count therefore gets one
// more cell of padding on its right than on its left.
func (m *messageNode) naturalWidth(ctx messageCtx) int {
	n := gc(m.payload)
	if ctx.isLoop() {
		return n + 6
	}
	w := n + 4
	if w%2 != 0 {
		w++
	}
	return w
}

func (m *messageNode) naturalHeight(ctx messageCtx) int {
	if ctx.isLoop() {
		return 4
	}
	return 3
}

// draw rasterises the message into its region. Directional messages put
// the payload centered on the first row and the arrow below it; loops
// draw a three-row glyph with the payload beside the shaft.
func (m *messageNode) draw(r *canvas.Region, ctx messageCtx) error {
	w := r.Bounds().Width

	if ctx.isLoop() {
		if err := r.Draw(0, 0, []string{"─┐", " │", "◀┘"}); err != nil {
			return err
		}
		if m.payload == "" {
			return nil
		}
		return r.Draw(3, 1, []string{m.payload})
	}

	filler := "─"
	if m.style == Dashed {
		filler = "-"
	}
	shaft := strings.Repeat(filler, w-2)
	var arrow string
	if ctx.sourceIdx > ctx.targetIdx {
		arrow = "◀" + shaft + filler
	} else {
		arrow = filler + shaft + "▶"
	}

	if m.payload != "" {
		pad := (w - gc(m.payload)) / 2
		if err := r.Draw(pad, 0, []string{m.payload}); err != nil {
			return err
		}
	}
	return r.Draw(0, 1, []string{arrow})
}

// Layout accumulates participants and messages as solver constraints in
// construction order, then solves and rasterises the scene. Participants
// must be added before any message that references them; messages stack
// vertically in the order they are added.
type Layout struct {
	solver       *solver.Solver
	participants []*participantNode
	messages     []*messageNode
	solved       bool
}

// NewLayout creates an empty layout.
func NewLayout() *Layout {
	return &Layout{solver: solver.New()}
}

// AddParticipant appends a participant column to the right of the ones
// already added, with at least one column of spacing.
func (l *Layout) AddParticipant(p *Participant) {
	vars := newElemVars(l.solver)

	left := solver.K(0)
	if n := len(l.participants); n > 0 {
		left = l.participants[n-1].vars.rightExpr().Plus(solver.K(1))
	}

	req := solver.Required
	l.solver.Add(solver.NewConstraint(solver.V(vars.left), solver.GE, left, req))
	l.solver.Add(solver.NewConstraint(solver.V(vars.top), solver.GE, solver.K(0), req))
	l.solver.Add(solver.NewConstraint(solver.V(vars.width), solver.EQ, solver.K(float64(p.naturalWidth())), req))
	l.solver.Add(solver.NewConstraint(solver.V(vars.height), solver.EQ, solver.K(float64(p.naturalHeight())), req))

	l.participants = append(l.participants, &participantNode{vars: vars, data: p})
}

// AddMessage appends a message between two previously added participants.
// The message is pinned to the left endpoint's lifeline and stretched to
// the right endpoint's lifeline, pushing the right endpoint (and,
// transitively, everything beyond it) rightward when the label needs
// room. Adding a message whose participants are unknown is a programmer
// error and panics.
func (l *Layout) AddMessage(source, target *Participant, payload string, style EdgeStyle) {
	pleft, pright := l.endpoints(source, target)
	if pleft == nil || (source.ID != target.ID && pright == nil) {
		panic(fmt.Sprintf("seq: message %q -> %q references unknown participants", source.ID, target.ID))
	}

	node := &messageNode{
		vars:    newElemVars(l.solver),
		source:  source,
		target:  target,
		payload: payload,
		style:   style,
	}

	// The context only needs to distinguish loops here; real column
	// indices are supplied at draw time.
	ctx := messageCtx{sourceIdx: 0, targetIdx: 0}
	if pright != nil {
		ctx.targetIdx = 1
	}

	top := pleft.vars.bottomExpr()
	if n := len(l.messages); n > 0 {
		top = l.messages[n-1].vars.bottomExpr()
	}

	req := solver.Required
	l.solver.Add(solver.NewConstraint(solver.V(node.vars.top), solver.EQ, top, req))
	l.solver.Add(solver.NewConstraint(solver.V(node.vars.left), solver.EQ, pleft.vars.centerExpr().Plus(solver.K(1)), req))
	l.solver.Add(solver.NewConstraint(solver.V(node.vars.width), solver.GE, solver.K(float64(node.naturalWidth(ctx))), req))
	l.solver.Add(solver.NewConstraint(solver.V(node.vars.height), solver.EQ, solver.K(float64(node.naturalHeight(ctx))), req))

	if pright != nil {
		right := node.vars.rightExpr()
		l.solver.Add(solver.NewConstraint(right, solver.EQ, pright.vars.centerExpr(), req))
		// Make space for the label: the right endpoint may move right,
		// never the arrow past its lifeline.
		l.solver.Add(solver.NewConstraint(pright.vars.centerExpr(), solver.GE, right, req))
	}

	l.messages = append(l.messages, node)
}

// endpoints returns the leftmost participant column that is an endpoint
// of the message, and the next endpoint column to its right (nil for
// self-loops).
func (l *Layout) endpoints(source, target *Participant) (pleft, pright *participantNode) {
	for _, node := range l.participants {
		if node.data.ID != source.ID && node.data.ID != target.ID {
			continue
		}
		if pleft == nil {
			pleft = node
			continue
		}
		pright = node
		break
	}
	return pleft, pright
}

// columnIndex returns the position of a participant in column order.
func (l *Layout) columnIndex(p *Participant) int {
	for i, node := range l.participants {
		if node.data.ID == p.ID {
			return i
		}
	}
	panic(fmt.Sprintf("seq: unknown participant %q", p.ID))
}

// solve runs the constraint solver once. Infeasibility cannot happen for
// scene-generated systems; it indicates a bug and panics.
func (l *Layout) solve() {
	if l.solved {
		return
	}
	if err := l.solver.Solve(); err != nil {
		panic(fmt.Sprintf("seq: layout constraints unsatisfiable: %v", err))
	}
	l.solved = true
}

// Render solves the layout and rasterises the scene: lifelines first,
// then participant headers and footers, then messages in input order.
// The returned frame has rows joined by "\n" with no trailing newline.
// Draw failures indicate a layout bug and panic.
func (l *Layout) Render() string {
	l.solve()

	maxRight, maxBottom := 0, 0
	any := false
	for _, node := range l.participants {
		c := node.vars.resolve(l.solver)
		maxRight = max(maxRight, c.right())
		maxBottom = max(maxBottom, c.bottom())
		any = true
	}
	for _, node := range l.messages {
		c := node.vars.resolve(l.solver)
		maxRight = max(maxRight, c.right())
		maxBottom = max(maxBottom, c.bottom())
		any = true
	}
	if !any {
		return ""
	}
	width := maxRight + 1
	height := maxBottom + 3

	cv := canvas.New(width, height)

	lifeline := make([]string, height)
	for i := range lifeline {
		lifeline[i] = "│"
	}
	for _, node := range l.participants {
		c := node.vars.resolve(l.solver)
		mustDraw(cv.Draw(c.center(), 0, lifeline))
		mustDraw(node.data.drawBox(cv.Region(c.left, c.top, c.width, c.height)))
		mustDraw(node.data.drawBox(cv.Region(c.left, height-3, c.width, c.height)))
	}

	for _, node := range l.messages {
		c := node.vars.resolve(l.solver)
		ctx := messageCtx{
			sourceIdx: l.columnIndex(node.source),
			targetIdx: l.columnIndex(node.target),
		}
		mustDraw(node.draw(cv.Region(c.left, c.top, c.width, c.height), ctx))
	}

	return cv.Content()
}

func mustDraw(err error) {
	if err != nil {
		panic(fmt.Sprintf("seq: draw failed: %v", err))
	}
}
