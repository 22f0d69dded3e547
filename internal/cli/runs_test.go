package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/refined/internal/store"
)

// recordRuns checks the users document twice into a fresh run log.
func recordRuns(t *testing.T) (string, []string) {
	t.Helper()
	db := filepath.Join(t.TempDir(), "runs.db")

	var ids []string
	for _, doc := range []string{usersDoc, validDoc} {
		buf, _ := executeCheck(t, "json", usersSchema, doc, "--record", db)
		var resp struct {
			Data CheckResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		ids = append(ids, resp.Data.RunID)
	}
	return db, ids
}

func executeRuns(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRunsCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestRunsList(t *testing.T) {
	db, ids := recordRuns(t)

	buf, err := executeRuns(t, "json", "--db", db)
	require.NoError(t, err)

	var resp struct {
		Data []store.RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, ids[1], resp.Data[0].ID.Get())
	assert.Equal(t, int64(2), resp.Data[0].Seq)
	assert.Equal(t, 0, resp.Data[0].Violations)
	assert.Equal(t, 4, resp.Data[1].Violations)
}

func TestRunsListText(t *testing.T) {
	db, ids := recordRuns(t)

	buf, err := executeRuns(t, "text", "--db", db, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), ids[1])
	assert.NotContains(t, buf.String(), ids[0])
	assert.Contains(t, buf.String(), "2 record(s), 0 violation(s)")
}

func TestRunsShow(t *testing.T) {
	db, ids := recordRuns(t)

	buf, err := executeRuns(t, "text", "--db", db, "--run", ids[0])
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Run "+ids[0]+" (seq 1)")
	assert.Contains(t, output, "4 violation(s):")
	assert.Regexp(t, `digest:  [0-9a-f]{64}`, output)
	assert.Contains(t, output, "record 2: unknown: email is not allowed")
}

func TestRunsShowUnknown(t *testing.T) {
	db, _ := recordRuns(t)

	_, err := executeRuns(t, "text", "--db", db, "--run", "0190c2a4-0000-7000-8000-000000000000")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
}

func TestRunsMissingDatabase(t *testing.T) {
	_, err := executeRuns(t, "text", "--db", filepath.Join(t.TempDir(), "none.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
