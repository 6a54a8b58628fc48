package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/waypath/internal/report"
	"github.com/stretchr/testify/require"
)

type memRecorder struct {
	run   report.Run
	cases []report.CaseRecord
	calls int
}

func (m *memRecorder) Record(_ context.Context, run report.Run, cases []report.CaseRecord) error {
	m.run, m.cases = run, cases
	m.calls++
	return nil
}

func quietLog(t *testing.T) {
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })
}

func defaultRunOptions() runOptions {
	return runOptions{Dir: filepath.Join("..", "..", "fixture", "testdata"), Speed: 2, DwellTime: 10, Workers: 2}
}

func TestRun_Fixtures(t *testing.T) {
	quietLog(t)
	rec := &memRecorder{}
	var out bytes.Buffer

	ok, err := run(context.Background(), defaultRunOptions(), nil, &out, rec)
	require.NoError(t, err)
	require.True(t, ok, out.String())

	require.Equal(t, 1, rec.calls)
	require.Equal(t, 2, rec.run.Fixtures)
	require.Equal(t, 6, rec.run.Cases)
	require.Equal(t, 6, rec.run.Passed)
	require.Len(t, rec.cases, 6)

	text := out.String()
	require.Equal(t, 6, strings.Count(text, ", PASS\n"))
	require.Contains(t, text, "optimized lowest time: 90.711 sec, expected: 90.711 sec. Diff (sec): 0.000, PASS")
	require.Contains(t, text, "2 files, 6 cases, 6 passed, 0 failed")
}

func TestRun_FailingFixture(t *testing.T) {
	quietLog(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_input_a.txt"), []byte("1\n50 50 20\n0\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_output_a.txt"), []byte("80.711\n"), 0o600))

	opts := defaultRunOptions()
	opts.Dir = dir
	opts.ShowPath = true
	var out bytes.Buffer
	ok, err := run(context.Background(), opts, nil, &out, report.NopRecorder{})
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, out.String(), "Diff (sec): 10.000, FAIL")
	require.Contains(t, out.String(), " PATH: (0,0) (50,50) (100,100)\n")
}

func TestRun_InvalidFixture(t *testing.T) {
	quietLog(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_input_a.txt"), []byte("1\n-5 50 20\n0\n"), 0o600))

	opts := defaultRunOptions()
	opts.Dir = dir
	_, err := run(context.Background(), opts, nil, io.Discard, report.NopRecorder{})
	require.Error(t, err)
}

func TestRun_Stdin(t *testing.T) {
	opts := defaultRunOptions()
	opts.Stdin = true
	in := strings.NewReader("1\n50 50 20\n3\n30 30 90\n60 60 80\n10 90 10\n0\n")
	var out bytes.Buffer

	ok, err := run(context.Background(), opts, in, &out, report.NopRecorder{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "90.711\n110.711\n", out.String())
}

func TestRun_BadCostModel(t *testing.T) {
	opts := defaultRunOptions()
	opts.Speed = 0
	_, err := run(context.Background(), opts, nil, io.Discard, report.NopRecorder{})
	require.Error(t, err)
}
