package ast

type NodeType string

const (
	NodeIntegerLiteral       NodeType = "IntegerLiteral"
	NodeStringLiteral        NodeType = "StringLiteral"
	NodeIdentifier           NodeType = "Identifier"
	NodeLastValueReference   NodeType = "LastValueReference"
	NodeComparisonExpression NodeType = "ComparisonExpression"
	NodeSetStatement         NodeType = "SetStatement"
	NodeArithmeticStatement  NodeType = "ArithmeticStatement"
	NodeShowStatement        NodeType = "ShowStatement"
	NodeIfStatement          NodeType = "IfStatement"
	NodeSequenceStatement    NodeType = "SequenceStatement"
	NodeCountLoop            NodeType = "CountLoop"
)

type Node interface {
	NodeType() NodeType
}

// Marker interfaces. The node set is closed: only types in this package
// implement them.

type Expression interface {
	Node
	expressionNode()
}

type Statement interface {
	Node
	statementNode()
}

// Expressions

type IntegerLiteral struct {
	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{Value: value}
}

func (*IntegerLiteral) NodeType() NodeType { return NodeIntegerLiteral }
func (*IntegerLiteral) expressionNode()    {}

// StringLiteral holds the literal text without its quotes.
type StringLiteral struct {
	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{Value: value}
}

func (*StringLiteral) NodeType() NodeType { return NodeStringLiteral }
func (*StringLiteral) expressionNode()    {}

// Identifier references a variable by name.
type Identifier struct {
	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{Name: name}
}

func (*Identifier) NodeType() NodeType { return NodeIdentifier }
func (*Identifier) expressionNode()    {}

// LastValueReference is the pronoun "it".
type LastValueReference struct{}

func NewLastValueReference() *LastValueReference {
	return &LastValueReference{}
}

func (*LastValueReference) NodeType() NodeType { return NodeLastValueReference }
func (*LastValueReference) expressionNode()    {}

type ComparisonOperator string

const (
	CompareGreater ComparisonOperator = "greater"
	CompareLess    ComparisonOperator = "less"
	CompareEqual   ComparisonOperator = "equal"
)

type ComparisonExpression struct {
	Operator ComparisonOperator `json:"operator"`
	Left     Expression         `json:"left"`
	Right    Expression         `json:"right"`
}

func NewComparisonExpression(op ComparisonOperator, left, right Expression) *ComparisonExpression {
	return &ComparisonExpression{Operator: op, Left: left, Right: right}
}

func (*ComparisonExpression) NodeType() NodeType { return NodeComparisonExpression }
func (*ComparisonExpression) expressionNode()    {}

// Statements

type SetStatement struct {
	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewSetStatement(name string, value Expression) *SetStatement {
	return &SetStatement{Name: name, Value: value}
}

func (*SetStatement) NodeType() NodeType { return NodeSetStatement }
func (*SetStatement) statementNode()     {}

type ArithmeticOperator string

const (
	ArithmeticAdd      ArithmeticOperator = "add"
	ArithmeticSubtract ArithmeticOperator = "subtract"
	ArithmeticMultiply ArithmeticOperator = "multiply"
)

// ArithmeticStatement updates an existing integer binding in place: Target
// is increased by, decreased by, or multiplied by Value.
type ArithmeticStatement struct {
	Operator ArithmeticOperator `json:"operator"`
	Target   string             `json:"target"`
	Value    Expression         `json:"value"`
}

func NewArithmeticStatement(op ArithmeticOperator, target string, value Expression) *ArithmeticStatement {
	return &ArithmeticStatement{Operator: op, Target: target, Value: value}
}

func (*ArithmeticStatement) NodeType() NodeType { return NodeArithmeticStatement }
func (*ArithmeticStatement) statementNode()     {}

// ShowStatement covers the show, print and display spellings.
type ShowStatement struct {
	Value Expression `json:"value"`
}

func NewShowStatement(value Expression) *ShowStatement {
	return &ShowStatement{Value: value}
}

func (*ShowStatement) NodeType() NodeType { return NodeShowStatement }
func (*ShowStatement) statementNode()     {}

// IfStatement has no else branch.
type IfStatement struct {
	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
}

func NewIfStatement(cond Expression, then Statement) *IfStatement {
	return &IfStatement{Condition: cond, Then: then}
}

func (*IfStatement) NodeType() NodeType { return NodeIfStatement }
func (*IfStatement) statementNode()     {}

type SequenceStatement struct {
	First  Statement `json:"first"`
	Second Statement `json:"second"`
}

func NewSequenceStatement(first, second Statement) *SequenceStatement {
	return &SequenceStatement{First: first, Second: second}
}

func (*SequenceStatement) NodeType() NodeType { return NodeSequenceStatement }
func (*SequenceStatement) statementNode()     {}

// CountLoop runs Body a fixed number of times; Count is evaluated once.
type CountLoop struct {
	Count Expression `json:"count"`
	Body  Statement  `json:"body"`
}

func NewCountLoop(count Expression, body Statement) *CountLoop {
	return &CountLoop{Count: count, Body: body}
}

func (*CountLoop) NodeType() NodeType { return NodeCountLoop }
func (*CountLoop) statementNode()     {}
