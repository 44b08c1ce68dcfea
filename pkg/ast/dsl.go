package ast

// Literal and reference helpers.

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func It() *LastValueReference {
	return NewLastValueReference()
}

// Comparison helpers.

func Gt(left, right Expression) *ComparisonExpression {
	return NewComparisonExpression(CompareGreater, left, right)
}

func Lt(left, right Expression) *ComparisonExpression {
	return NewComparisonExpression(CompareLess, left, right)
}

func Eq(left, right Expression) *ComparisonExpression {
	return NewComparisonExpression(CompareEqual, left, right)
}

// Statement helpers. Argument order follows the surface syntax.

func Set(name string, value Expression) *SetStatement {
	return NewSetStatement(name, value)
}

// Add builds "add value to target".
func Add(value Expression, target string) *ArithmeticStatement {
	return NewArithmeticStatement(ArithmeticAdd, target, value)
}

// Sub builds "subtract value from target".
func Sub(value Expression, target string) *ArithmeticStatement {
	return NewArithmeticStatement(ArithmeticSubtract, target, value)
}

// Mul builds "multiply target by value".
func Mul(target string, value Expression) *ArithmeticStatement {
	return NewArithmeticStatement(ArithmeticMultiply, target, value)
}

func Show(value Expression) *ShowStatement {
	return NewShowStatement(value)
}

func If(cond Expression, then Statement) *IfStatement {
	return NewIfStatement(cond, then)
}

// Seq chains statements right-nested: Seq(a, b, c) is Seq(a, Seq(b, c)).
func Seq(first Statement, rest ...Statement) Statement {
	if len(rest) == 0 {
		return first
	}
	return NewSequenceStatement(first, Seq(rest[0], rest[1:]...))
}

func Count(count Expression, body Statement) *CountLoop {
	return NewCountLoop(count, body)
}
