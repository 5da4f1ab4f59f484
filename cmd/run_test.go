package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"process-scheduler/internal/core"
	"process-scheduler/internal/responses"
)

func writeProcesses(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "processes.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRun_SinglePolicyTable(t *testing.T) {
	path := writeProcesses(t, "pid,arrival,burst,priority\nP1,0,5,2\nP2,1,3,1\nP3,2,8,3\n")

	out, err := execute(t, "run", "--file", path, "--policy", "fcfs")
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "First Come First Serve"), out)
	require.True(t, strings.Contains(out, "Gantt schedule"), out)
	require.True(t, strings.Contains(out, "16"), out)
}

func TestRun_AllPoliciesJSON(t *testing.T) {
	path := writeProcesses(t, "P1,0,5\nP2,1,3\nP3,2,1\n")

	out, err := execute(t, "run", "--file", path, "--json", "--quantum", "2")
	require.NoError(t, err)

	var all responses.AllAlgorithmsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Len(t, all.Results, 4)

	rr := all.Results[3]
	pids := make([]string, 0, len(rr.Trace))
	for _, e := range rr.Trace {
		pids = append(pids, e.ProcessId)
	}
	require.Equal(t, []string{"P1", "P2", "P3", "P1", "P2", "P1"}, pids)
}

func TestRun_TickStrategyMatchesJump(t *testing.T) {
	path := writeProcesses(t, "P1,3,2,1\nP2,10,4,0\nP3,11,1,2\n")

	jump, err := execute(t, "run", "--file", path, "--json", "--policy", "sjf", "--idle", "jump")
	require.NoError(t, err)
	tick, err := execute(t, "run", "--file", path, "--json", "--policy", "sjf", "--idle", "tick")
	require.NoError(t, err)

	var a, b responses.AllAlgorithmsResponse
	require.NoError(t, json.Unmarshal([]byte(jump), &a))
	require.NoError(t, json.Unmarshal([]byte(tick), &b))
	require.Equal(t, a.Results[0].Trace, b.Results[0].Trace)
	require.Equal(t, a.Results[0].Details, b.Results[0].Details)
}

func TestRun_InvalidQuantum(t *testing.T) {
	path := writeProcesses(t, "P1,0,5\n")

	_, err := execute(t, "run", "--file", path, "--policy", "rr", "--quantum", "abc")
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrValidation))
}

func TestRun_UnknownPolicy(t *testing.T) {
	path := writeProcesses(t, "P1,0,5\n")

	_, err := execute(t, "run", "--file", path, "--policy", "lottery")
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrValidation))
}

func TestRun_MalformedNumber(t *testing.T) {
	path := writeProcesses(t, "P1,zero,5\n")

	_, err := execute(t, "run", "--file", path, "--policy", "fcfs")
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrValidation))
}

func TestRun_ConfigFileIsolatedPerCommand(t *testing.T) {
	path := writeProcesses(t, "P1,0,5\nP2,0,5\n")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scheduler:\n  round_robin:\n    time_quantum: 5\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "run", "--file", path, "--policy", "rr", "--json")
	require.NoError(t, err)
	var fromFile responses.AllAlgorithmsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &fromFile))
	require.Equal(t, 5, fromFile.Results[0].TimeQuantum)
	require.Len(t, fromFile.Results[0].Trace, 2)

	// a fresh command tree falls back to the default quantum
	out, err = execute(t, "run", "--file", path, "--policy", "rr", "--json")
	require.NoError(t, err)
	var defaults responses.AllAlgorithmsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &defaults))
	require.Equal(t, 2, defaults.Results[0].TimeQuantum)
	require.Len(t, defaults.Results[0].Trace, 6)
}

func TestRun_MissingConfigFile(t *testing.T) {
	path := writeProcesses(t, "P1,0,5\n")

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "run", "--file", path)
	require.Error(t, err)
}
