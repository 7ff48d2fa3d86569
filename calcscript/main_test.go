package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjl/giocalc/internal/calcscript"
)

func TestReadScript(t *testing.T) {
	name, src, err := readScript(`operand(1)`, nil)
	require.NoError(t, err)
	assert.Equal(t, "<inline>", name)
	assert.Equal(t, "operand(1)", string(src))

	file := filepath.Join(t.TempDir(), "sum.star")
	require.NoError(t, os.WriteFile(file, []byte(`operand(2)`), 0644))
	name, src, err = readScript("", []string{file})
	require.NoError(t, err)
	assert.Equal(t, file, name)
	assert.Equal(t, "operand(2)", string(src))

	_, _, err = readScript("x", []string{file})
	assert.ErrorIs(t, err, errInlineAndFile)
	_, _, err = readScript("", nil)
	assert.ErrorIs(t, err, errScriptCount)
	_, _, err = readScript("", []string{file, file})
	assert.ErrorIs(t, err, errScriptCount)
	_, _, err = readScript("", []string{filepath.Join(t.TempDir(), "missing.star")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrintSession(t *testing.T) {
	src := `
operand(2)
press("+")
print(record())
operand(3)
press("=")
`
	s, err := calcscript.Run(context.Background(), "t.star", []byte(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	printSession(&buf, s)
	assert.Equal(t, "2 + ...\nrecord: 2 + 3 =\nresult: 5\n", buf.String())

	s, err = calcscript.Run(context.Background(), "t.star", []byte(`operand(2); press("×")`))
	require.NoError(t, err)
	buf.Reset()
	printSession(&buf, s)
	assert.Equal(t, "record: 2 × ...\nresult: none\n", buf.String())
}
