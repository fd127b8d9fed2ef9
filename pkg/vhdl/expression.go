package vhdl

import (
	"fmt"
	"strings"
)

// Expression is a node of a parsed VHDL expression.
type Expression interface {
	fmt.Stringer
	isExpression()
}

// Literal is a numeric, character, string, bit string or boolean literal.
type Literal struct {
	Value string
}

// Reference names a signal, variable, port or constant.
type Reference struct {
	Name VariableName
}

// Call is a function call or an indexed name such as rising_edge(clk) or x(3).
type Call struct {
	Name VariableName
	Args []Expression
}

// Slice selects a discrete range of a vector, e.g. data(7 downto 0).
type Slice struct {
	Name      VariableName
	Left      Expression
	Direction string
	Right     Expression
}

// Unary applies not, abs or a sign to its operand.
type Unary struct {
	Op      string
	Operand Expression
}

// Binary applies an infix operator.
type Binary struct {
	Op          string
	Left, Right Expression
}

// Paren keeps explicit parentheses so expressions render as written.
type Paren struct {
	Inner Expression
}

// Others is the aggregate (others => Value).
type Others struct {
	Value Expression
}

func (Literal) isExpression()   {}
func (Reference) isExpression() {}
func (Call) isExpression()      {}
func (Slice) isExpression()     {}
func (Unary) isExpression()     {}
func (Binary) isExpression()    {}
func (Paren) isExpression()     {}
func (Others) isExpression()    {}

func (l Literal) String() string   { return l.Value }
func (r Reference) String() string { return string(r.Name) }

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

func (s Slice) String() string {
	return fmt.Sprintf("%s(%s %s %s)", s.Name, s.Left, s.Direction, s.Right)
}

func (u Unary) String() string {
	if u.Op == "-" || u.Op == "+" {
		return u.Op + u.Operand.String()
	}
	return u.Op + " " + u.Operand.String()
}

func (b Binary) String() string { return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right) }
func (p Paren) String() string  { return "(" + p.Inner.String() + ")" }
func (o Others) String() string { return "(others => " + o.Value.String() + ")" }

var (
	logicalOperators  = []string{"and", "or", "nand", "nor", "xor", "xnor"}
	relationOperators = []string{"=", "/=", "<", "<=", ">", ">="}
	shiftOperators    = []string{"sll", "srl", "sla", "sra", "rol", "ror"}
	addingOperators   = []string{"+", "-", "&"}
	multiplyOperators = []string{"*", "/", "mod", "rem"}
)

// ParseExpression parses a complete expression.
func ParseExpression(text string) (Expression, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) operator(ops []string) (string, bool) {
	t := p.peek()
	for _, op := range ops {
		if t.is(op) {
			p.pos++
			return strings.ToLower(op), true
		}
	}
	return "", false
}

func (p *parser) expression() (Expression, error) {
	left, err := p.relation()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.operator(logicalOperators)
		if !ok {
			return left, nil
		}
		right, err := p.relation()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) relation() (Expression, error) {
	left, err := p.shiftExpression()
	if err != nil {
		return nil, err
	}
	op, ok := p.operator(relationOperators)
	if !ok {
		return left, nil
	}
	right, err := p.shiftExpression()
	if err != nil {
		return nil, err
	}
	return Binary{Op: op, Left: left, Right: right}, nil
}

func (p *parser) shiftExpression() (Expression, error) {
	left, err := p.simpleExpression()
	if err != nil {
		return nil, err
	}
	op, ok := p.operator(shiftOperators)
	if !ok {
		return left, nil
	}
	right, err := p.simpleExpression()
	if err != nil {
		return nil, err
	}
	return Binary{Op: op, Left: left, Right: right}, nil
}

func (p *parser) simpleExpression() (Expression, error) {
	sign, signed := p.operator([]string{"+", "-"})
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	if signed {
		left = Unary{Op: sign, Operand: left}
	}
	for {
		op, ok := p.operator(addingOperators)
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) term() (Expression, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.operator(multiplyOperators)
		if !ok {
			return left, nil
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) factor() (Expression, error) {
	if op, ok := p.operator([]string{"not", "abs"}); ok {
		operand, err := p.primary()
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, Operand: operand}, nil
	}
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.accept("**") {
		exponent, err := p.primary()
		if err != nil {
			return nil, err
		}
		return Binary{Op: "**", Left: base, Right: exponent}, nil
	}
	return base, nil
}

func (p *parser) primary() (Expression, error) {
	t := p.peek()
	switch t.kind {
	case tokenInteger, tokenReal, tokenChar, tokenString, tokenBitString:
		p.pos++
		return Literal{Value: t.text}, nil
	case tokenIdent:
		if t.is("true") || t.is("false") {
			p.pos++
			return Literal{Value: strings.ToLower(t.text)}, nil
		}
		return p.name()
	case tokenSymbol:
		if t.is("(") {
			p.pos++
			if p.accept("others") {
				if err := p.expect("=>"); err != nil {
					return nil, err
				}
				value, err := p.expression()
				if err != nil {
					return nil, err
				}
				if err := p.expect(")"); err != nil {
					return nil, err
				}
				return Others{Value: value}, nil
			}
			inner, err := p.expression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return Paren{Inner: inner}, nil
		}
	}
	return nil, p.errorf("expected expression")
}

// name parses an identifier with an optional call, index or slice suffix.
func (p *parser) name() (Expression, error) {
	id, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if !p.accept("(") {
		return Reference{Name: id}, nil
	}
	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	if dir, ok := p.operator([]string{"downto", "to"}); ok {
		right, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return Slice{Name: id, Left: first, Direction: dir, Right: right}, nil
	}
	args := []Expression{first}
	for p.accept(",") {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return Call{Name: id, Args: args}, nil
}

// Condition is a parsed transition guard.
type Condition struct {
	Expr Expression
}

// ParseCondition parses a guard expression. A blank guard is rejected.
func ParseCondition(text string) (Condition, error) {
	if strings.TrimSpace(text) == "" {
		return Condition{}, &SyntaxError{Reason: "condition is empty"}
	}
	expr, err := ParseExpression(text)
	if err != nil {
		return Condition{}, err
	}
	return Condition{Expr: expr}, nil
}

func (c Condition) String() string {
	if c.Expr == nil {
		return ""
	}
	return c.Expr.String()
}

func (c Condition) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Condition) UnmarshalText(data []byte) error {
	parsed, err := ParseCondition(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
