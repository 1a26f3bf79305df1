package main

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/katalvlaran/rectilinear/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

func TestRunR_Token11(t *testing.T) {
	logger, buf := testLogger()
	code, err := run("R", []string{"11"}, nil, logger)
	require.NoError(t, err)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "refinement 11")
}

func TestRunR_MissingArgument(t *testing.T) {
	logger, _ := testLogger()
	code, err := run("R", nil, nil, logger)
	assert.Error(t, err)
	assert.Equal(t, exitUsage, code)
}

func TestRunR_UnparseableRefinement(t *testing.T) {
	logger, _ := testLogger()
	code, err := run("R", []string{"not-a-number"}, nil, logger)
	assert.Error(t, err)
	assert.Equal(t, exitUsage, code)
}

func TestRunR_RejectsInvalidRefinement(t *testing.T) {
	logger, _ := testLogger()
	code, err := run("R", []string{"0"}, nil, logger)
	assert.Error(t, err)
	assert.Equal(t, exitInvalidInput, code)
}

func TestRunUnknownVerb(t *testing.T) {
	logger, _ := testLogger()
	code, err := run("Q", nil, nil, logger)
	assert.Error(t, err)
	assert.Equal(t, exitUsage, code)
}

func TestRunS_MissingFilePropagatesMissingInput(t *testing.T) {
	logger, _ := testLogger()
	dir := t.TempDir()
	code, err := run("S", []string{"11", "1", "11", "2"}, []driver.Option{driver.WithOutputDir(dir)}, logger)
	assert.Error(t, err)
	assert.Equal(t, exitMissingInput, code)
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, exitInvalidInput, exitCodeFor(driver.ErrInvalidInput))
	assert.Equal(t, exitCrossCheckMismatch, exitCodeFor(driver.ErrCrossCheckMismatch))
	assert.Equal(t, exitFileCorruption, exitCodeFor(driver.ErrFileCorruption))
	assert.Equal(t, exitOverflow, exitCodeFor(driver.ErrOverflow))
	assert.Equal(t, exitMissingInput, exitCodeFor(driver.ErrMissingInput))
	assert.Equal(t, exitBaseMismatch, exitCodeFor(driver.ErrBaseMismatch))
	assert.Equal(t, exitInvalidInput, exitCodeFor(errors.New("something else")))
}

func TestRunX_MaxSizeOnePasses(t *testing.T) {
	logger, buf := testLogger()
	code, err := run("X", nil, []driver.Option{driver.WithMaxSize(1)}, logger)
	require.NoError(t, err)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "passed")
}
