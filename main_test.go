package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootMenuExit(t *testing.T) {
	out, err := execute(t, "3\n")
	assert.Nil(t, err)
	assert.Contains(t, out, "[1] RUN")
}

func TestRootRejectsBadSettings(t *testing.T) {
	_, err := execute(t, "3\n", "--base", "7")
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))

	_, err = execute(t, "3\n", "--lo", "3", "--hi", "1")
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, "", "preview", "--base", "-1", "--lo", "-2", "--hi", "2", "--width", "30", "--height", "4")
	assert.Nil(t, err)
	assert.Contains(t, out, "y + zi = (-1.00)^x")
	assert.Contains(t, out, "400")

	_, err = execute(t, "", "preview", "--width", "2")
	assert.NotNil(t, err)
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")

	out, err := execute(t, "", "export", "-o", path, "--plane", "xz", "--size", "200", "--base", "-2", "--lo", "-5", "--hi", "5")
	assert.Nil(t, err)
	assert.Contains(t, out, "wrote "+path)

	st, err := os.Stat(path)
	assert.Nil(t, err)
	assert.Greater(t, st.Size(), int64(0))

	_, err = execute(t, "", "export", "-o", path, "--plane", "zx")
	assert.NotNil(t, err)

	_, err = execute(t, "", "export", "-o", path, "--size", "10")
	assert.NotNil(t, err)
}
