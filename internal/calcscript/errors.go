package calcscript

import "errors"

var (
	ErrScriptNil     = errors.New("calcscript: script is empty")
	ErrCompileFailed = errors.New("calcscript: compile failed")
	ErrExecFailed    = errors.New("calcscript: execution failed")
	ErrBadArgument   = errors.New("calcscript: bad argument")
)
