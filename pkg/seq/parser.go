package seq

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError describes input that does not match the diagram grammar.
// The CLI surfaces it to the user prefixed with "Invalid syntax:".
type ParseError struct {
	// Line is the 1-based source line of the offending statement.
	Line int
	// Detail describes what was expected.
	Detail string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
}

// reserved words that cannot be used as participant identifiers.
const keywordAlias = "alias"

var (
	aliasRe = regexp.MustCompile(
		`^alias\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*"([^"]*)"$`)
	messageRe = regexp.MustCompile(
		`^([A-Za-z_][A-Za-z0-9_]*)\s*(<--|-->|<-|->)\s*([A-Za-z_][A-Za-z0-9_]*)\s*(:\s*"([^"]*)")?$`)
)

// Parse reads diagram source text into a Diagram. Statements appear one
// per line or separated by semicolons; lines starting with "#" or "//"
// are comments. Quoted strings are taken literally between the quotes;
// escape sequences are not interpreted.
func Parse(input string) (*Diagram, error) {
	diag := &Diagram{}
	for lineNo, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}
		for _, stmt := range splitStatements(trimmed) {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := parseStatement(diag, stmt, lineNo+1); err != nil {
				return nil, err
			}
		}
	}
	return diag, nil
}

// splitStatements splits a line on semicolons that sit outside quoted
// strings, so payloads may contain ";".
func splitStatements(line string) []string {
	var stmts []string
	var sb strings.Builder
	inQuote := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			sb.WriteRune(r)
		case r == ';' && !inQuote:
			stmts = append(stmts, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}
	stmts = append(stmts, sb.String())
	return stmts
}

// parseStatement appends one alias or message statement to diag.
func parseStatement(diag *Diagram, stmt string, line int) error {
	if m := aliasRe.FindStringSubmatch(stmt); m != nil {
		id := m[1]
		if id == keywordAlias {
			return &ParseError{Line: line, Detail: fmt.Sprintf("%q is a reserved word and cannot be used as an identifier", id)}
		}
		diag.Aliases = append(diag.Aliases, Alias{ID: id, Label: m[2]})
		return nil
	}

	if m := messageRe.FindStringSubmatch(stmt); m != nil {
		left, arrow, right, payload := m[1], m[2], m[3], m[5]
		for _, id := range []string{left, right} {
			if id == keywordAlias {
				return &ParseError{Line: line, Detail: fmt.Sprintf("%q is a reserved word and cannot be used as an identifier", id)}
			}
		}

		msg := Message{Source: left, Target: right, Payload: payload}
		switch arrow {
		case "->":
			msg.Style = Continuous
		case "-->":
			msg.Style = Dashed
		case "<-":
			msg.Style = Continuous
			msg.Source, msg.Target = right, left
		case "<--":
			msg.Style = Dashed
			msg.Source, msg.Target = right, left
		}
		diag.Messages = append(diag.Messages, msg)
		return nil
	}

	return &ParseError{Line: line, Detail: fmt.Sprintf("expected an alias declaration or a message, got %q", stmt)}
}
