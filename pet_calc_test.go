package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSingleCommand(t *testing.T) {
	out, err := execute(t, "single",
		"--tdb", "20", "--tr", "20", "--v", "0.15", "--rh", "50", "--met", "1.37", "--clo", "0.5")
	require.NoError(t, err)

	var got float64
	_, err = fmt.Sscanf(out, "PET: %f", &got)
	require.NoError(t, err)
	assert.InDelta(t, 18.85, got, 0.02)
	assert.Contains(t, out, "comfortable (no thermal stress)")
	assert.Contains(t, out, "PMV:")
	assert.Contains(t, out, "t_core:")
	assert.Contains(t, out, "neutral operative temperature:")
}

func TestSingleCommandRejectsInvalidPerson(t *testing.T) {
	_, err := execute(t, "single", "--tdb", "20", "--tr", "20", "--sex", "unknown")
	assert.ErrorContains(t, err, "sex")

	_, err = execute(t, "single", "--tdb", "20")
	assert.ErrorContains(t, err, "tr")
}

func TestSingleCommandReportsNonConvergence(t *testing.T) {
	_, err := execute(t, "single", "--tdb", "20", "--tr", "20", "--clo", "0")
	assert.ErrorContains(t, err, "calculate PET")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "conditions.csv")
	require.NoError(t, os.WriteFile(input, []byte(conditionsCSV), 0644))
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "batch", "--input", input, "-o", outDir, "--workers", "2", "--log", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "cases: 3  failures: 0")

	file, err := os.Open(filepath.Join(outDir, resultFileName))
	require.NoError(t, err)
	defer file.Close()

	var rows []*ResultRow
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"office", "street", "3"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.InDelta(t, 18.85, rows[0].Pet, 0.02)
	assert.InDelta(t, -5.15, rows[2].Pet, 0.02)
}

func TestBatchCommandRequiresInput(t *testing.T) {
	_, err := execute(t, "batch")
	assert.ErrorContains(t, err, "input")
}

func TestBatchCommandRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "batch", "--input", "x.csv", "--log", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}
