package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceCommand_CanonicalOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"quicksort", "--array", "3,1,2", "--token", "trace-test"})

	require.NoError(t, cmd.Execute())

	output := strings.TrimSuffix(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(output, `{"algorithm":"quicksort","input":[3,1,2],"run_token":"trace-test","steps":[`))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Len(t, decoded["steps"], 8)
}

func TestTraceCommand_PinnedTokenIsDeterministic(t *testing.T) {
	run := func() string {
		buf := &bytes.Buffer{}
		cmd := NewTraceCommand(&RootOptions{Format: "text"})
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"selectionsort", "--array", "3,3,1", "--token", "fixed"})
		require.NoError(t, cmd.Execute())
		return buf.String()
	}

	assert.Equal(t, run(), run())
}

func TestTraceCommand_FreshTokenIsUUID(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"mergesort", "--array", "3,2,1"})

	require.NoError(t, cmd.Execute())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	token, ok := decoded["run_token"].(string)
	require.True(t, ok)
	assert.Len(t, token, 36)
}

func TestTraceCommand_BytesIdenticalRegardlessOfFormat(t *testing.T) {
	run := func(format string) string {
		buf := &bytes.Buffer{}
		cmd := NewTraceCommand(&RootOptions{Format: format})
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"quicksort", "--array", "3,1,2", "--token", "same"})
		require.NoError(t, cmd.Execute())
		return buf.String()
	}

	assert.Equal(t, run("text"), run("json"))
}

func TestTraceCommand_UnknownAlgorithm(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"heapsort"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
