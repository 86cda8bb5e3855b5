package buffer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWriteLines_TerminatesEveryLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, []string{"a", "", "b"}))
	require.Equal(t, "a\n\nb\n", buf.String())
}

func TestReadLines_EmptyInputIsOneEmptyLine(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, []string{""}, lines)
}

func TestReadLines_WithoutTrailingNewline(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\nb"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, lines)
}

func TestWriteReadLines_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[ -~]{0,16}`), 1, 8).Draw(t, "lines")

		var buf bytes.Buffer
		require.NoError(t, WriteLines(&buf, lines))
		got, err := ReadLines(&buf)
		require.NoError(t, err)
		require.Equal(t, lines, got)
	})
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	store := FileStore{Path: path}

	lines, err := store.LoadLines()
	require.NoError(t, err)
	require.Equal(t, []string{""}, lines, "missing file loads as one empty line")

	d := New("class Foo", "", "  int x;")
	require.NoError(t, store.SaveLines(d.Lines()))

	lines, err = store.LoadLines()
	require.NoError(t, err)
	require.Equal(t, d.Lines(), lines)
}
