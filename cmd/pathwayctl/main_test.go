package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		driver, logLevel = "", ""
		updateFlags = struct {
			title       string
			description string
			icon        string
			position    string
			detailsFile string
		}{}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderNodes(t *testing.T) {
	out := renderNodes(pathway.Catalog()[:2])

	assert.Contains(t, out, "POS")
	assert.Contains(t, out, "degree")
	assert.Contains(t, out, "prerequisites")
	assert.Contains(t, out, "book")
}

func TestSeedListAndUpdateWithSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "pathway.db"))

	out, err := execute(t, "seed", "--driver", "sqlite", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Inserted 14 nodes")

	_, err = execute(t, "seed", "--driver", "sqlite", "--log-level", "error")
	assert.ErrorContains(t, err, "already has rows")

	details := filepath.Join(dir, "details.txt")
	require.NoError(t, writeFile(details, "  Study probability \n\nPass Exam P\n"))
	out, err = execute(t, "nodes", "update", "degree", "--driver", "sqlite", "--log-level", "error",
		"--title", "Degree", "--position", "x", "--details-file", details)
	require.NoError(t, err)
	assert.Contains(t, out, "Changes saved")

	out, err = execute(t, "nodes", "list", "--driver", "sqlite", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	var degreeLine string
	for _, line := range lines {
		if strings.Contains(line, " degree ") {
			degreeLine = line
		}
	}
	assert.Contains(t, degreeLine, "Degree")
	assert.Contains(t, degreeLine, "1", "non-numeric position keeps the old one")
}

func TestUpdateUnknownNode(t *testing.T) {
	_, err := execute(t, "nodes", "update", "missing", "--driver", "memory", "--log-level", "error")
	assert.Error(t, err)
}

func TestSeedUnsupportedDriver(t *testing.T) {
	t.Setenv("CONTENT_PATH", filepath.Join(t.TempDir(), "pathway.yaml"))
	_, err := execute(t, "seed", "--driver", "content", "--log-level", "error")
	assert.ErrorContains(t, err, "cannot be seeded")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
