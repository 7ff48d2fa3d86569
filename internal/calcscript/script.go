// Package calcscript runs Starlark scripts that drive a calculator session.
//
// Scripts see these builtins in addition to the Starlark universe and the
// math module:
//
//	operand(x)     set the current operand (int or float)
//	press(symbol)  perform the operation named by symbol
//	result()       current value, or None
//	record()       record string of the session
//	symbols()      list of known operation symbols
package calcscript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/fjl/giocalc/internal/calc"
)

// Session is the outcome of a script run.
type Session struct {
	eval   *calc.Evaluator
	output []string
}

// Result returns the value of the evaluator after the script finished.
func (s *Session) Result() (float64, bool) {
	return s.eval.Result()
}

// Record returns the record string of the evaluator after the script finished.
func (s *Session) Record() string {
	return s.eval.Record()
}

// Output returns the lines printed by the script.
func (s *Session) Output() []string {
	return slices.Clone(s.output)
}

var fileOptions = &syntax.FileOptions{
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Run compiles src and executes it against a fresh evaluator. The name is used
// in error messages. Cancelling ctx aborts the script.
func Run(ctx context.Context, name string, src []byte, opts ...Option) (*Session, error) {
	cfg := newConfig(opts)
	logger := slog.New(cfg.handler).With("script", name)

	if len(src) == 0 {
		return nil, ErrScriptNil
	}
	s := &Session{eval: calc.New(calc.WithLogger(logger.WithGroup("calc")))}
	predeclared := s.globals()

	_, prog, err := starlark.SourceProgramOptions(fileOptions, name, src, predeclared.Has)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			logger.Debug("print", "msg", msg)
			s.output = append(s.output, msg)
		},
	}
	if cfg.maxSteps > 0 {
		thread.SetMaxExecutionSteps(cfg.maxSteps)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecFailed, err)
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	if _, err := prog.Init(thread, predeclared); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecFailed, ctxErr)
		}
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			logger.Debug("Script failed", "backtrace", evalErr.Backtrace())
		}
		return nil, fmt.Errorf("%w: %w", ErrExecFailed, err)
	}

	result, ok := s.Result()
	logger.Debug("Script done", "record", s.Record(), "result", result, "hasResult", ok)
	return s, nil
}

// globals returns the predeclared names of a script, bound to s.
func (s *Session) globals() starlark.StringDict {
	g := maps.Clone(starlark.Universe)
	g["math"] = starlarkmath.Module
	g["operand"] = starlark.NewBuiltin("operand", s.operand)
	g["press"] = starlark.NewBuiltin("press", s.press)
	g["result"] = starlark.NewBuiltin("result", s.result)
	g["record"] = starlark.NewBuiltin("record", s.record)
	g["symbols"] = starlark.NewBuiltin("symbols", symbols)
	return g
}

func (s *Session) operand(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	f, ok := starlark.AsFloat(x)
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %s, want int or float", b.Name(), ErrBadArgument, x.Type())
	}
	s.eval.SetOperand(f)
	return starlark.None, nil
}

func (s *Session) press(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	symbol, ok := starlark.AsString(x)
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %s, want string", b.Name(), ErrBadArgument, x.Type())
	}
	s.eval.PerformOperation(symbol)
	return starlark.None, nil
}

func (s *Session) result(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	v, ok := s.eval.Result()
	if !ok {
		return starlark.None, nil
	}
	return starlark.Float(v), nil
}

func (s *Session) record(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.String(s.eval.Record()), nil
}

func symbols(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	syms := calc.Symbols()
	list := make([]starlark.Value, len(syms))
	for i, sym := range syms {
		list[i] = starlark.String(sym)
	}
	return starlark.NewList(list), nil
}
