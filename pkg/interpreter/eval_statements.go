package interpreter

import (
	"fmt"
	"math"

	"github.com/Alanissocool/plain-lang/pkg/ast"
	"github.com/Alanissocool/plain-lang/pkg/runtime"
)

// Exec runs stmt. A failure stops the statement at the point it occurred;
// effects already applied stay applied.
func (i *Interpreter) Exec(stmt ast.Statement) error {
	switch n := stmt.(type) {
	case *ast.SetStatement:
		val, err := i.Eval(n.Value)
		if err != nil {
			return err
		}
		i.env.Define(n.Name, val)
		i.env.SetLast(val)
		return nil
	case *ast.ArithmeticStatement:
		return i.execArithmetic(n)
	case *ast.ShowStatement:
		val, err := i.Eval(n.Value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.out, val.String())
		return err
	case *ast.IfStatement:
		cond, err := i.Eval(n.Condition)
		if err != nil {
			return err
		}
		c, ok := cond.(runtime.IntegerValue)
		if !ok {
			return errConditionType
		}
		if c.Val == 0 {
			return nil
		}
		return i.Exec(n.Then)
	case *ast.SequenceStatement:
		if err := i.Exec(n.First); err != nil {
			return err
		}
		return i.Exec(n.Second)
	case *ast.CountLoop:
		return i.execCountLoop(n)
	default:
		return fmt.Errorf("unsupported statement type: %s", stmt.NodeType())
	}
}

// execArithmetic applies add, subtract or multiply to an existing integer
// binding. Like set, it refreshes the value "it" refers to.
func (i *Interpreter) execArithmetic(n *ast.ArithmeticStatement) error {
	val, err := i.Eval(n.Value)
	if err != nil {
		return err
	}
	current, ok := i.env.Lookup(n.Target)
	if !ok {
		return i.unboundError(n.Target)
	}
	target, ok := current.(runtime.IntegerValue)
	if !ok {
		return runtimeErrorf("Type error: '%s' does not hold a number", n.Target)
	}
	operand, ok := val.(runtime.IntegerValue)
	if !ok {
		return runtimeErrorf("Type error: expected number to %s", n.Operator)
	}

	var result int64
	switch n.Operator {
	case ast.ArithmeticAdd:
		result, ok = addInt64(target.Val, operand.Val)
	case ast.ArithmeticSubtract:
		result, ok = subInt64(target.Val, operand.Val)
	case ast.ArithmeticMultiply:
		result, ok = mulInt64(target.Val, operand.Val)
	default:
		return fmt.Errorf("unsupported arithmetic operator: %s", n.Operator)
	}
	if !ok {
		return errOverflow
	}
	updated := runtime.IntegerValue{Val: result}
	i.env.Define(n.Target, updated)
	i.env.SetLast(updated)
	return nil
}

func (i *Interpreter) execCountLoop(n *ast.CountLoop) error {
	countVal, err := i.Eval(n.Count)
	if err != nil {
		return err
	}
	count, ok := countVal.(runtime.IntegerValue)
	if !ok {
		return errLoopCountType
	}
	if i.loopLimit > 0 && count.Val > i.loopLimit {
		return runtimeErrorf("loop count %d exceeds limit %d", count.Val, i.loopLimit)
	}
	for iter := int64(0); iter < count.Val; iter++ {
		if err := i.Exec(n.Body); err != nil {
			return err
		}
	}
	return nil
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}
