package calc

import "strconv"

const (
	Empty Phase = iota
	OperandEntered
	BinaryPending
	Resolved
)

// Phase is the coarse state of an Evaluator.
type Phase int

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case OperandEntered:
		return "operand"
	case BinaryPending:
		return "pending"
	case Resolved:
		return "resolved"
	default:
		panic("unknown phase")
	}
}

// state is one of empty, entered or pending.
// An empty expr means no expression has been entered.
type state interface {
	phase() Phase
}

// empty has no value. This is the initial state, and also the state after
// "=" was applied to a binary operation still waiting for its operand. In
// the latter case the operation is kept in stalled and resolved by the next
// "=" that finds a value.
type empty struct {
	expr    string
	stalled *pendingOp
}

// entered holds a value outside of any binary operation.
type entered struct {
	value    float64
	expr     string
	stalled  *pendingOp
	resolved bool
}

// pending is a binary operation waiting for, or holding, its second operand.
type pending struct {
	op         pendingOp
	expr       string
	operand    float64
	hasOperand bool
	// appendOperand is set while operand came from SetOperand and is not yet
	// part of expr.
	appendOperand bool
}

func (empty) phase() Phase   { return Empty }
func (pending) phase() Phase { return BinaryPending }

func (s entered) phase() Phase {
	if s.resolved {
		return Resolved
	}
	return OperandEntered
}

type pendingOp struct {
	symbol string
	fn     BinaryOp
	first  float64
}

func (p *pendingOp) apply(second float64) float64 {
	return p.fn(p.first, second)
}

// formatNumber renders x for the record.
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// appendSymbol appends a constant symbol to expr without a separator.
func appendSymbol(expr, symbol string) string {
	if expr == "" {
		return symbol
	}
	return expr + symbol
}

// exprOrValue returns expr, or the rendering of value when nothing has been
// entered since the last clear.
func exprOrValue(expr string, value float64) string {
	if expr == "" {
		return formatNumber(value)
	}
	return expr
}
