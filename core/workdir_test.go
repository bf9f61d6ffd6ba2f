package core

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithWorkDir_RemovesOnSuccess(t *testing.T) {
	root := t.TempDir()
	var seen string
	err := withWorkDir(root, "tmp_git", func(dir string) error {
		seen = dir
		assert.DirExists(t, dir)
		return os.WriteFile(dir+"/file", []byte("x"), 0o600)
	})
	require.NoError(t, err)
	assert.NoDirExists(t, seen)
}

func TestWithWorkDir_RemovesOnError(t *testing.T) {
	root := t.TempDir()
	var seen string
	boom := errors.New("boom")
	err := withWorkDir(root, "tmp_git", func(dir string) error {
		seen = dir
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoDirExists(t, seen)
}

func TestWithWorkDir_RemovesOnPanic(t *testing.T) {
	root := t.TempDir()
	var seen string
	assert.Panics(t, func() {
		_ = withWorkDir(root, "tmp_git", func(dir string) error {
			seen = dir
			panic("kaboom")
		})
	})
	assert.NoDirExists(t, seen)
}

func TestWithWorkDir_BadRoot(t *testing.T) {
	called := false
	err := withWorkDir("/nonexistent/root/for/test", "tmp_git", func(string) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestWithWorkDir_UniquePerCall(t *testing.T) {
	root := t.TempDir()
	var first, second string
	require.NoError(t, withWorkDir(root, "tmp_git", func(dir string) error { first = dir; return nil }))
	require.NoError(t, withWorkDir(root, "tmp_git", func(dir string) error { second = dir; return nil }))
	assert.NotEqual(t, first, second)
}
