package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docbot"
	main "github.com/fwojciec/docbot/cmd/docbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain() *main.Main {
	m := main.NewMain()
	m.EnvFile = ""
	return m
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := newTestMain().Run(context.Background(), args, strings.NewReader(stdin), stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "", "--help")

	require.NoError(t, err)
	for _, cmd := range []string{"index", "lookup", "watch", "stats"} {
		assert.Contains(t, stdout, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "Flags:")
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "")

	assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
}

func TestMain_Run_IndexThenLookup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "docs.json")

	stdout, _, err := run(t, "", "index", testdataTypes, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Indexed 6 keywords (8 entries, 1 ambiguous)")

	t.Run("from the index file", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "lookup", "--index", out, "query", "EVENT_INIT", "nothing")

		require.NoError(t, err)
		assert.Contains(t, stdout, "query: 3 candidates")
		assert.Contains(t, stdout, `yii\db\Command::query()`)
		assert.Contains(t, stdout, `yii\db\Query::EVENT_INIT  (defined by yii\base\Component)`)
		assert.Contains(t, stdout, "nothing: no match")
	})

	t.Run("reloading on every call", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "prepare_models\n", "lookup", "--index", out, "--policy", "always")

		require.NoError(t, err)
		assert.Contains(t, stdout, `yii\data\ActiveDataProvider::prepareModels()`)
	})

	t.Run("stats", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "stats", "--index", out)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Keywords:    6")
		assert.Contains(t, stdout, "Entries:     8")
	})
}

func TestMain_Run_IndexToDatabase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "docs.json")
	db := filepath.Join(dir, "docbot.db")

	indexOut, _, err := run(t, "", "index", testdataTypes, "--out", out, "--db", db)
	require.NoError(t, err)

	lookupOut, _, err := run(t, "", "lookup", "--db", db, "totalCount", "nothing")
	require.NoError(t, err)
	assert.Contains(t, lookupOut, `yii\data\ActiveDataProvider::$totalCount  Total number of possible data models.  (defined by yii\data\BaseDataProvider)`)
	assert.Contains(t, lookupOut, "nothing: no match")

	statsOut, _, err := run(t, "", "stats", "--db", db)
	require.NoError(t, err)
	fingerprint := func(s string) string {
		_, after, _ := strings.Cut(s, "Fingerprint: ")
		return strings.TrimSpace(after)
	}
	assert.Equal(t, fingerprint(indexOut), fingerprint(statsOut))
	assert.NotEmpty(t, fingerprint(statsOut))
}

func TestMain_Run_LookupWithoutIndex(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "lookup", "--index", filepath.Join(t.TempDir(), "docs.json"), "query")

	assert.Equal(t, docbot.ENOTFOUND, docbot.ErrorCode(err))
}

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.json")
	config := filepath.Join(dir, "docbot.yaml")
	require.NoError(t, os.WriteFile(config, []byte("index:\n  out: "+out+"\n"), 0644))

	_, _, err := run(t, "", "--config", config, "index", testdataTypes)

	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestMain_Run_EnvironmentWinsOverConfigFile(t *testing.T) {
	dir := t.TempDir()
	fromEnv := filepath.Join(dir, "from-env.json")
	fromConfig := filepath.Join(dir, "from-config.json")
	config := filepath.Join(dir, "docbot.yaml")
	require.NoError(t, os.WriteFile(config, []byte("index:\n  out: "+fromConfig+"\n"), 0644))
	t.Setenv("DOCBOT_INDEX", fromEnv)

	_, _, err := run(t, "", "--config", config, "index", testdataTypes)

	require.NoError(t, err)
	assert.FileExists(t, fromEnv)
	assert.NoFileExists(t, fromConfig)
}

func TestMain_Run_MissingConfigFile(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "stats")

	assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, main.ExitCode(nil))
	assert.Equal(t, 2, main.ExitCode(docbot.Errorf(docbot.EINVALID, "bad input")))
	assert.Equal(t, 3, main.ExitCode(docbot.Errorf(docbot.EMALFORMED, "no keyword")))
	assert.Equal(t, 4, main.ExitCode(docbot.Errorf(docbot.EPERSIST, "disk full")))
	assert.Equal(t, 5, main.ExitCode(docbot.Errorf(docbot.ENOTFOUND, "no index")))
	assert.Equal(t, 1, main.ExitCode(errors.New("boom")))
}
