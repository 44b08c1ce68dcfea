package interpreter

import (
	"fmt"

	"github.com/Alanissocool/plain-lang/pkg/ast"
	"github.com/Alanissocool/plain-lang/pkg/runtime"
)

// Eval evaluates expr. It reads the environment but never changes it.
func (i *Interpreter) Eval(expr ast.Expression) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.Identifier:
		if v, ok := i.env.Lookup(n.Name); ok {
			return v, nil
		}
		return nil, i.unboundError(n.Name)
	case *ast.LastValueReference:
		if v, ok := i.env.Last(); ok {
			return v, nil
		}
		return nil, errNoLastValue
	case *ast.ComparisonExpression:
		return i.evaluateComparison(n)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", expr.NodeType())
	}
}

func (i *Interpreter) evaluateComparison(cmp *ast.ComparisonExpression) (runtime.Value, error) {
	left, err := i.Eval(cmp.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Eval(cmp.Right)
	if err != nil {
		return nil, err
	}

	if cmp.Operator == ast.CompareEqual {
		switch l := left.(type) {
		case runtime.IntegerValue:
			if r, ok := right.(runtime.IntegerValue); ok {
				return runtime.Truth(l.Val == r.Val), nil
			}
		case runtime.StringValue:
			if r, ok := right.(runtime.StringValue); ok {
				return runtime.Truth(l.Val == r.Val), nil
			}
		}
		return nil, errCompareSameType
	}

	l, lok := left.(runtime.IntegerValue)
	r, rok := right.(runtime.IntegerValue)
	if !lok || !rok {
		return nil, errCompareNumbers
	}
	if cmp.Operator == ast.CompareGreater {
		return runtime.Truth(l.Val > r.Val), nil
	}
	return runtime.Truth(l.Val < r.Val), nil
}
