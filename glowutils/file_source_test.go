package glowutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
)

func TestFileSourceReload(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "shader.frag", "void main() {}\n")

	src, err := NewFileSource(path)
	r.NoError(err)
	r.True(filepath.IsAbs(src.Path()))
	r.Equal("void main() {}\n", src.String())

	l := &countingListener{}
	src.RegisterListener(l)

	r.NoError(src.Reload())
	r.Zero(l.count, "unchanged file must not notify")

	writeFile(t, dir, "shader.frag", "void main() { discard; }\n")
	r.NoError(src.Reload())
	r.Equal(1, l.count)
	r.Equal("void main() { discard; }\n", src.String())

	r.NoError(os.Remove(path))
	r.Error(src.Reload())
	r.Equal("void main() { discard; }\n", src.String())

	_, err = NewFileSource(filepath.Join(dir, "missing.vert"))
	r.Error(err)
}

func TestCreateShaderFromFile(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "quad.vert", "#version 330 core\nvoid main() {}\n")

	s, src, err := CreateShaderFromFile(ctx, gl.VERTEX_SHADER, path)
	r.NoError(err)
	r.True(s.IsCompiled())
	r.Same(src, s.Source())

	writeFile(t, dir, "quad.vert", "#version 330 core\n#error broken\n")
	r.NoError(src.Reload())
	r.False(s.IsCompiled())
	r.Error(s.CompileError())
	r.Equal([]string{"#version 330 core\n#error broken\n"}, api.ShaderSources(s.ID()))

	_, _, err = CreateShaderFromFile(ctx, gl.VERTEX_SHADER, filepath.Join(dir, "none.vert"))
	r.Error(err)
}

func TestFileWatcherReloadsChangedFiles(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "watched.frag", "one")
	other := writeFile(t, dir, "other.frag", "two")

	src, err := NewFileSource(path)
	r.NoError(err)
	untouched, err := NewFileSource(other)
	r.NoError(err)

	w, err := NewFileWatcher()
	r.NoError(err)
	defer w.Close()
	r.NoError(w.Watch(src))
	r.NoError(w.Watch(src))
	r.NoError(w.Watch(untouched))
	r.Zero(w.Pending())

	writeFile(t, dir, "watched.frag", "three")
	r.Eventually(func() bool { return w.Pending() == 1 }, 5*time.Second, 10*time.Millisecond)

	// Changes are only applied on request.
	r.Equal("one", src.String())
	r.Equal(1, w.ReloadChanged())
	r.Equal("three", src.String())
	r.Equal("two", untouched.String())

	w.Unwatch(src)
	writeFile(t, dir, "watched.frag", "four")
	writeFile(t, dir, "other.frag", "five")
	r.Eventually(func() bool { return w.Pending() == 1 }, 5*time.Second, 10*time.Millisecond)
	r.Equal(1, w.ReloadChanged())
	r.Equal("three", src.String())
	r.Equal("five", untouched.String())

	r.NoError(w.Close())
	r.NoError(w.Close())
}
