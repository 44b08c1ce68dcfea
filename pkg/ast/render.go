package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Render prints node in canonical surface syntax. Trees produced by the
// parser render to text that parses back to the same tree, except where an
// if or count statement is followed by a "then" continuation, which the
// grammar always attaches to the inner statement.
func Render(node Node) string {
	var b strings.Builder
	render(&b, node)
	return b.String()
}

func render(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *IntegerLiteral:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *StringLiteral:
		b.WriteByte('"')
		b.WriteString(n.Value)
		b.WriteByte('"')
	case *Identifier:
		b.WriteString(n.Name)
	case *LastValueReference:
		b.WriteString("it")
	case *ComparisonExpression:
		render(b, n.Left)
		switch n.Operator {
		case CompareGreater:
			b.WriteString(" is greater than ")
		case CompareLess:
			b.WriteString(" is less than ")
		default:
			b.WriteString(" is equal to ")
		}
		render(b, n.Right)
	case *SetStatement:
		fmt.Fprintf(b, "set %s to ", n.Name)
		render(b, n.Value)
	case *ArithmeticStatement:
		switch n.Operator {
		case ArithmeticAdd:
			b.WriteString("add ")
			render(b, n.Value)
			fmt.Fprintf(b, " to %s", n.Target)
		case ArithmeticSubtract:
			b.WriteString("subtract ")
			render(b, n.Value)
			fmt.Fprintf(b, " from %s", n.Target)
		default:
			fmt.Fprintf(b, "multiply %s by ", n.Target)
			render(b, n.Value)
		}
	case *ShowStatement:
		b.WriteString("show ")
		render(b, n.Value)
	case *IfStatement:
		b.WriteString("if ")
		render(b, n.Condition)
		b.WriteString(" then ")
		render(b, n.Then)
	case *SequenceStatement:
		render(b, n.First)
		b.WriteString(" then ")
		render(b, n.Second)
	case *CountLoop:
		b.WriteString("count to ")
		render(b, n.Count)
		b.WriteString(" and when you are done ")
		render(b, n.Body)
	case nil:
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}
