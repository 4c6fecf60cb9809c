package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadTextAndAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "example")

	_, err := ReadText(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "read input "+path)

	require.NoError(t, AtomicWrite(path, []byte("0 <-> 0\n")))
	got, err := ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "0 <-> 0\n", got)

	require.NoError(t, AtomicWrite(path, []byte("1 <-> 1\n")))
	got, err = ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "1 <-> 1\n", got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestEscapePath(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"", "empty-string"},
		{"task", "task"},
		{"2026-10-18T10:00:00Z", "2026-10-18T10%3A00%3A00Z"},
		{"a/b.c", "a%2Fb%2Ec"},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, EscapePath(c.in), "input: %s", c.in)
	}
}

func FuzzEscapePath(f *testing.F) {
	workDir := f.TempDir()
	f.Add("a")
	f.Add("a/b")
	f.Add("a\\b")
	f.Add("a:b")
	f.Add("a*b")
	f.Add("a?b")
	f.Add("a\"b")
	f.Add("a<b")
	f.Add("a>b")
	f.Add("a|b")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 20 {
			return
		}
		got := EscapePath(input)
		dir := filepath.Join(workDir, got)
		err := os.Mkdir(dir, 0776)
		require.NoError(t, err, "input: %s, got: %s", input, got)
		err = os.Remove(dir)
		require.NoError(t, err, "input: %s, got: %s", input, got)
	})
}
