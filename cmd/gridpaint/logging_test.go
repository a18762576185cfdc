package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DiscardByDefault(t *testing.T) {
	log, closer, err := setupLogging("", "info")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, io.Discard, log.Out)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestSetupLogging_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gridpaint.log")

	log, closer, err := setupLogging(path, "debug")
	require.NoError(t, err)

	log.WithField("row", 3).Debug("paint")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=paint")
	assert.Contains(t, string(data), "row=3")
}

func TestSetupLogging_BadLevel(t *testing.T) {
	_, _, err := setupLogging("", "chatty")
	assert.Error(t, err)
}

func TestReadImportArg(t *testing.T) {
	text, err := readImportArg("[[1]]")
	require.NoError(t, err)
	assert.Equal(t, "[[1]]", text)

	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, os.WriteFile(path, []byte("[[2, 0]]"), 0o600))
	text, err = readImportArg("@" + path)
	require.NoError(t, err)
	assert.Equal(t, "[[2, 0]]", text)

	_, err = readImportArg("@" + filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
