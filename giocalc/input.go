package main

import (
	"strconv"

	"github.com/fjl/giocalc/internal/calc"
)

// entry is the number being typed.
type entry struct {
	input  string
	top    float64
	typing bool
}

// digit processes an input digit.
func (e *entry) digit(in string) bool {
	if len(in) != 1 {
		panic("bad digit")
	}
	switch {
	case in[0] == '.':
		e.begin()
		for i := range e.input {
			if e.input[i] == '.' {
				return false
			}
		}
		e.input += in
		return true
	case in[0] >= '0' && in[0] <= '9':
		e.begin()
		return e.parse(e.input + in)
	default:
		return false
	}
}

// begin starts a new number unless one is being typed.
func (e *entry) begin() {
	if !e.typing {
		e.input = ""
		e.top = 0
		e.typing = true
	}
}

// rubout undoes the last input.
func (e *entry) rubout() {
	if e.typing && len(e.input) > 0 {
		e.input = e.input[:len(e.input)-1]
		e.parse(e.input)
	}
}

// parse reads the given input.
func (e *entry) parse(input string) bool {
	if input == "" {
		e.top = 0
		e.input = ""
		e.typing = true
		return true
	}
	num, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return false
	}
	e.top = num
	e.input = input
	e.typing = true
	return true
}

// take ends typing and returns the typed number.
func (e *entry) take() (float64, bool) {
	if !e.typing {
		return 0, false
	}
	e.typing = false
	return e.top, true
}

// session connects the keypad to the evaluator.
type session struct {
	eval    calc.Evaluator
	entry   entry
	display float64
}

// digit processes an input digit.
func (s *session) digit(in string) bool {
	return s.entry.digit(in)
}

// paste replaces the typed number with text.
func (s *session) paste(text string) bool {
	var e entry
	if !e.parse(text) {
		return false
	}
	s.entry = e
	return true
}

// rubout undoes the last typed character.
func (s *session) rubout() {
	s.entry.rubout()
}

// perform applies the operation. A number being typed becomes the operand
// first.
func (s *session) perform(symbol string) {
	if x, ok := s.entry.take(); ok {
		s.eval.SetOperand(x)
		s.display = x
	}
	s.eval.PerformOperation(symbol)
	if v, ok := s.eval.Result(); ok {
		s.display = v
	} else if _, first, ok := s.eval.Pending(); ok {
		s.display = first
	}
}

// active reports whether symbol is the pending binary operation.
func (s *session) active(symbol string) bool {
	pending, _, ok := s.eval.Pending()
	return ok && pending == symbol && !s.entry.typing
}

// text gives the main output of the calculator.
func (s *session) text() string {
	if s.entry.typing {
		if s.entry.input == "" {
			return "0"
		}
		return s.entry.input
	}
	return strconv.FormatFloat(s.display, 'g', 12, 64)
}

// record gives the history line.
func (s *session) record() string {
	return s.eval.Record()
}
