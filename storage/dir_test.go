package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestDirRead(t *testing.T) {
	dir := NewDir(t.TempDir())

	t.Run("existing file", func(t *testing.T) {
		name := uniuri.New()
		require.NoError(t, dir.Create(name, []byte("lorem ipsum")))

		data, err := dir.Read(name)
		require.NoError(t, err)
		require.Equal(t, "lorem ipsum", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := dir.Read("nothing-here.txt")
		require.Error(t, err)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(base, "sub"), 0755))

		_, err := NewDir(base).Read("sub")
		require.Error(t, err)
	})
}

func TestDirCreate(t *testing.T) {
	t.Run("truncates existing content", func(t *testing.T) {
		dir := NewDir(t.TempDir())
		require.NoError(t, dir.Create("file.txt", []byte("a much longer first version")))
		require.NoError(t, dir.Create("file.txt", []byte("short")))

		data, err := dir.Read("file.txt")
		require.NoError(t, err)
		require.Equal(t, "short", string(data))
	})

	t.Run("empty content", func(t *testing.T) {
		dir := NewDir(t.TempDir())
		require.NoError(t, dir.Create("empty.txt", nil))

		data, err := dir.Read("empty.txt")
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("open failure", func(t *testing.T) {
		dir := NewDir(filepath.Join(t.TempDir(), "does", "not", "exist"))

		err := dir.Create("file.txt", []byte("data"))
		require.ErrorIs(t, err, ErrOpen)
		require.NotErrorIs(t, err, ErrWrite)
	})
}
