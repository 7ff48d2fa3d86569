// Package calc implements the calculator evaluator: an accumulated value, an
// optional pending binary operation and a record of everything entered.
package calc

import (
	"log/slog"
)

// Evaluator is the calculator state machine. The zero value is ready to use.
// An Evaluator must not be used from multiple goroutines at once.
type Evaluator struct {
	state  state
	logger *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger makes the evaluator log its transitions at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// New creates an evaluator.
func New(opts ...Option) *Evaluator {
	e := new(Evaluator)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) current() state {
	if e.state == nil {
		return empty{}
	}
	return e.state
}

// SetOperand sets the current value. Outside of a binary operation this also
// starts a new expression. The second operand of a binary operation is added
// to the record later, by the operation that consumes it.
func (e *Evaluator) SetOperand(x float64) {
	switch s := e.current().(type) {
	case empty:
		e.state = entered{value: x, expr: formatNumber(x), stalled: s.stalled}
	case entered:
		e.state = entered{value: x, expr: formatNumber(x), stalled: s.stalled}
	case pending:
		s.operand, s.hasOperand = x, true
		e.state = s
	}
	e.debug("operand set", "value", x)
}

// PerformOperation applies the operation named by symbol. Unknown symbols, and
// operations that need a value when there is none, are ignored.
func (e *Evaluator) PerformOperation(symbol string) {
	op, ok := Lookup(symbol)
	if !ok {
		e.debug("unknown operation ignored", "symbol", symbol)
		return
	}
	before := e.current()
	switch op := op.(type) {
	case Constant:
		e.state = constant(before, symbol, float64(op))
	case UnaryOp:
		e.state = unary(before, symbol, op)
	case BinaryOp:
		e.state = binary(before, symbol, op)
	case Equals:
		e.state = equals(before)
	case Clear:
		e.state = entered{value: 0}
	}
	e.debug("operation performed", "symbol", symbol, "kind", op.opKind(), "from", before.phase(), "to", e.state.phase())
}

func constant(s state, symbol string, v float64) state {
	switch s := s.(type) {
	case empty:
		return entered{value: v, expr: appendSymbol(s.expr, symbol), stalled: s.stalled}
	case entered:
		return entered{value: v, expr: appendSymbol(s.expr, symbol), stalled: s.stalled}
	case pending:
		s.operand, s.hasOperand = v, true
		s.expr = appendSymbol(s.expr, symbol)
		s.appendOperand = false
		return s
	}
	return s
}

func unary(s state, symbol string, fn UnaryOp) state {
	switch s := s.(type) {
	case entered:
		s.expr = symbol + "(" + exprOrValue(s.expr, s.value) + ")"
		s.value = fn(s.value)
		s.resolved = false
		return s
	case pending:
		if !s.hasOperand {
			return s
		}
		s.expr += " " + symbol + "(" + formatNumber(s.operand) + ")"
		s.operand = fn(s.operand)
		s.appendOperand = false
		return s
	}
	return s
}

func binary(s state, symbol string, fn BinaryOp) state {
	switch s := s.(type) {
	case entered:
		return pending{
			op:            pendingOp{symbol: symbol, fn: fn, first: s.value},
			expr:          exprOrValue(s.expr, s.value) + " " + symbol,
			appendOperand: true,
		}
	case pending:
		if !s.hasOperand {
			return s
		}
		// Resolve the previous operation first, chaining left to right.
		expr := s.expr + " " + formatNumber(s.operand)
		return pending{
			op:            pendingOp{symbol: symbol, fn: fn, first: s.op.apply(s.operand)},
			expr:          expr + " " + symbol,
			appendOperand: true,
		}
	}
	return s
}

func equals(s state) state {
	switch s := s.(type) {
	case entered:
		if s.stalled != nil {
			s.value = s.stalled.apply(s.value)
			s.stalled = nil
		}
		s.resolved = true
		return s
	case pending:
		if !s.hasOperand {
			op := s.op
			return empty{expr: s.expr, stalled: &op}
		}
		expr := s.expr
		if s.appendOperand {
			expr += " " + formatNumber(s.operand)
		}
		return entered{value: s.op.apply(s.operand), expr: expr, resolved: true}
	}
	return s
}

// Result returns the current value. It is absent before the first operand
// and while a binary operation waits for its second operand.
func (e *Evaluator) Result() (float64, bool) {
	switch s := e.current().(type) {
	case entered:
		return s.value, true
	case pending:
		return s.operand, s.hasOperand
	}
	return 0, false
}

// Record returns the expression entered so far, followed by " ..." while a
// binary operation is pending or " =" otherwise. It is " " when nothing has
// been entered.
func (e *Evaluator) Record() string {
	var expr string
	switch s := e.current().(type) {
	case empty:
		expr = s.expr
	case entered:
		expr = s.expr
	case pending:
		return s.expr + " ..."
	}
	if expr == "" {
		return " "
	}
	return expr + " ="
}

// Phase returns the current state of the evaluator.
func (e *Evaluator) Phase() Phase {
	return e.current().phase()
}

// Pending returns the symbol and first operand of the binary operation waiting
// for its second operand.
func (e *Evaluator) Pending() (symbol string, first float64, ok bool) {
	if s, ok := e.current().(pending); ok {
		return s.op.symbol, s.op.first, true
	}
	return "", 0, false
}

func (e *Evaluator) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
