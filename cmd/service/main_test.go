package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func journalConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	yaml := "log:\n  level: error\nstorage:\n  path: " + filepath.Join(dir, "journal.db") + "\n  watch_external: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(yaml), 0o600))

	return dir
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"serve", "today", "saved", "migrate"})
	assert.NotNil(t, root.RunE, "serve is the default")
}

func TestMigrateAndSaved(t *testing.T) {
	dir := journalConfig(t)

	out, err := execute(t, "migrate", "--config-dir", dir, "--profile", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version")

	out, err = execute(t, "saved", "--config-dir", dir, "--profile", "test", "-q", "zola")
	require.NoError(t, err)
	assert.Equal(t, "no saved quotes\n", out)
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("server:\n  port: 0\n"), 0o600))

	_, err := execute(t, "migrate", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestPrintSaved(t *testing.T) {
	var buf bytes.Buffer

	printSaved(&buf, []domain.SavedQuote{{
		ID:           "id-1",
		QuoteContent: "Know thyself.",
		QuoteAuthor:  "Socrates",
		Reflection:   "harder than it sounds",
		UpdatedAt:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}})

	assert.Equal(t, "1. \"Know thyself.\" - Socrates\n   harder than it sounds\n   (id-1, 2024-05-01)\n", buf.String())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("QUOTES_TEST_PROFILE", "qa")

	assert.Equal(t, "qa", envOr("QUOTES_TEST_PROFILE", "local"))
	assert.Equal(t, "local", envOr("QUOTES_TEST_UNSET", "local"))
}
