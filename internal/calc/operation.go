package calc

import "math"

// Operation is an entry of the operation table. It is one of Constant,
// UnaryOp, BinaryOp, Equals or Clear.
type Operation interface {
	opKind() string
}

// Constant replaces the current value.
type Constant float64

// UnaryOp transforms the current value.
type UnaryOp func(x float64) float64

// BinaryOp combines a captured first operand with the next value.
type BinaryOp func(x, y float64) float64

// Equals resolves the pending binary operation.
type Equals struct{}

// Clear resets the evaluator.
type Clear struct{}

func (Constant) opKind() string { return "constant" }
func (UnaryOp) opKind() string  { return "unary" }
func (BinaryOp) opKind() string { return "binary" }
func (Equals) opKind() string   { return "equals" }
func (Clear) opKind() string    { return "clear" }

// Operation symbols.
const (
	SymPi      = "π"
	SymE       = "e"
	SymSqrt    = "√"
	SymCos     = "cos"
	SymSin     = "sin"
	SymPercent = "٪"
	SymNegate  = "±"
	SymMul     = "×"
	SymDiv     = "÷"
	SymAdd     = "+"
	SymSub     = "−"
	SymEquals  = "="
	SymClear   = "AC"
)

var operations = map[string]Operation{
	SymPi:      Constant(math.Pi),
	SymE:       Constant(math.E),
	SymSqrt:    UnaryOp(math.Sqrt),
	SymCos:     UnaryOp(math.Cos),
	SymSin:     UnaryOp(math.Sin),
	SymPercent: UnaryOp(func(x float64) float64 { return x / 100 }),
	SymNegate:  UnaryOp(func(x float64) float64 { return -x }),
	SymMul:     BinaryOp(func(x, y float64) float64 { return x * y }),
	SymDiv:     BinaryOp(func(x, y float64) float64 { return x / y }),
	SymAdd:     BinaryOp(func(x, y float64) float64 { return x + y }),
	SymSub:     BinaryOp(func(x, y float64) float64 { return x - y }),
	SymEquals:  Equals{},
	SymClear:   Clear{},
}

// keypad order
var symbols = []string{
	SymClear, SymNegate, SymPercent, SymDiv,
	SymMul, SymSub, SymAdd, SymEquals,
	SymPi, SymE, SymSqrt, SymSin, SymCos,
}

// Lookup returns the operation for symbol.
func Lookup(symbol string) (Operation, bool) {
	op, ok := operations[symbol]
	return op, ok
}

// Symbols returns all known operation symbols.
func Symbols() []string {
	return append([]string(nil), symbols...)
}
