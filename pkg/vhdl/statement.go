package vhdl

import (
	"fmt"
	"strings"
)

// Statement is a sequential statement inside an action.
type Statement interface {
	fmt.Stringer
	isStatement()
}

// Assignment is a signal (<=) or variable (:=) assignment.
type Assignment struct {
	Target   Expression
	Operator string
	Value    Expression
}

// Null is the null statement.
type Null struct{}

// Branch is one guarded arm of an if statement.
type Branch struct {
	Condition Expression
	Body      Block
}

// If is an if/elsif/else statement. Else is only rendered when HasElse is set.
type If struct {
	Branches []Branch
	HasElse  bool
	Else     Block
}

// Alternative is one "when" arm of a case statement. An empty Choices list
// means "others".
type Alternative struct {
	Choices []Expression
	Body    Block
}

// Case is a case statement.
type Case struct {
	Selector     Expression
	Alternatives []Alternative
}

func (Assignment) isStatement() {}
func (Null) isStatement()       {}
func (If) isStatement()         {}
func (Case) isStatement()       {}

func (a Assignment) String() string {
	return fmt.Sprintf("%s %s %s;", a.Target, a.Operator, a.Value)
}

func (Null) String() string { return "null;" }

func (s If) String() string {
	var sb strings.Builder
	for i, b := range s.Branches {
		keyword := "if"
		if i > 0 {
			keyword = "elsif"
		}
		fmt.Fprintf(&sb, "%s %s then\n", keyword, b.Condition)
		writeBody(&sb, b.Body)
	}
	if s.HasElse {
		sb.WriteString("else\n")
		writeBody(&sb, s.Else)
	}
	sb.WriteString("end if;")
	return sb.String()
}

func (s Case) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "case %s is\n", s.Selector)
	for _, alt := range s.Alternatives {
		choices := "others"
		if len(alt.Choices) > 0 {
			parts := make([]string, len(alt.Choices))
			for i, c := range alt.Choices {
				parts[i] = c.String()
			}
			choices = strings.Join(parts, " | ")
		}
		fmt.Fprintf(&sb, "    when %s =>\n", choices)
		if len(alt.Body) > 0 {
			sb.WriteString(Indent(alt.Body.String(), 2) + "\n")
		}
	}
	sb.WriteString("end case;")
	return sb.String()
}

func writeBody(sb *strings.Builder, body Block) {
	if len(body) == 0 {
		return
	}
	sb.WriteString(Indent(body.String(), 1))
	sb.WriteString("\n")
}

// Indent prefixes every non-empty line of text with four spaces per level.
func Indent(text string, levels int) string {
	prefix := strings.Repeat("    ", levels)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Block is an ordered list of statements, the body of an action.
type Block []Statement

// ParseStatements parses the code of an action. Blank code yields an empty
// block.
func ParseStatements(code string) (Block, error) {
	p, err := newParser(code)
	if err != nil {
		return nil, err
	}
	block, err := p.block()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return block, nil
}

func (b Block) String() string {
	var sb strings.Builder
	for i, s := range b {
		if c, ok := s.(Comment); ok && c.Inline && i > 0 {
			sb.WriteString(" " + c.Text)
			continue
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (b Block) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Block) UnmarshalText(data []byte) error {
	parsed, err := ParseStatements(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (p *parser) block() (Block, error) {
	block := Block{}
	for {
		if c, ok := p.comment(); ok {
			block = append(block, c)
			continue
		}
		t := p.peek()
		if t.kind == tokenEOF || t.is("elsif") || t.is("else") || t.is("end") || t.is("when") {
			return block, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		block = append(block, stmt)
	}
}

func (p *parser) statement() (Statement, error) {
	switch t := p.peek(); {
	case t.is("if"):
		return p.ifStatement()
	case t.is("case"):
		return p.caseStatement()
	case t.is("null"):
		p.pos++
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		return Null{}, nil
	}
	target, err := p.name()
	if err != nil {
		return nil, err
	}
	op, ok := p.operator([]string{"<=", ":="})
	if !ok {
		return nil, p.errorf("expected assignment")
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return Assignment{Target: target, Operator: op, Value: value}, nil
}

func (p *parser) ifStatement() (Statement, error) {
	p.pos++ // if
	var stmt If
	for {
		cond, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect("then"); err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.Branches = append(stmt.Branches, Branch{Condition: cond, Body: body})
		if !p.accept("elsif") {
			break
		}
	}
	if p.accept("else") {
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.HasElse = true
		stmt.Else = body
	}
	if err := p.expect("end"); err != nil {
		return nil, err
	}
	if err := p.expect("if"); err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) caseStatement() (Statement, error) {
	p.pos++ // case
	selector, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect("is"); err != nil {
		return nil, err
	}
	stmt := Case{Selector: selector}
	for p.accept("when") {
		var alt Alternative
		if !p.accept("others") {
			for {
				choice, err := p.simpleExpression()
				if err != nil {
					return nil, err
				}
				alt.Choices = append(alt.Choices, choice)
				if !p.accept("|") {
					break
				}
			}
		}
		if err := p.expect("=>"); err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		alt.Body = body
		stmt.Alternatives = append(stmt.Alternatives, alt)
	}
	if len(stmt.Alternatives) == 0 {
		return nil, p.errorf("case statement has no alternatives")
	}
	if err := p.expect("end"); err != nil {
		return nil, err
	}
	if err := p.expect("case"); err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return stmt, nil
}
