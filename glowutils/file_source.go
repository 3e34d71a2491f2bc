package glowutils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/glow"
)

// FileSource is a StringSource backed by a file on disk. Reload re-reads the file and
// notifies listeners, so shaders using it recompile on their next use.
type FileSource interface {
	glow.StringSource

	// Path returns the absolute path of the file.
	//
	// Returns:
	//   - string: the path
	Path() string

	// Reload re-reads the file. On failure the previous text is kept.
	//
	// Returns:
	//   - error: error if the file cannot be read
	Reload() error
}

// fileSource implements FileSource on top of a static source.
type fileSource struct {
	glow.StaticStringSource
	path string
}

var _ FileSource = &fileSource{}

// NewFileSource reads path and returns a source holding its text.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - FileSource: the source
//   - error: error if the file cannot be read
func NewFileSource(path string) (FileSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	text, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Wrapf(err, "read shader source %s", abs)
	}
	return &fileSource{
		StaticStringSource: glow.NewStaticStringSource(string(text)),
		path:               abs,
	}, nil
}

func (f *fileSource) Path() string {
	return f.path
}

func (f *fileSource) Reload() error {
	text, err := os.ReadFile(f.path)
	if err != nil {
		return errors.Wrapf(err, "reload shader source %s", f.path)
	}
	if string(text) == f.String() {
		return nil
	}
	f.SetString(string(text))
	return nil
}

// CreateShaderFromFile creates a shader of type typ whose source is the file at path.
//
// Parameters:
//   - ctx: the owning context
//   - typ: the shader stage
//   - path: the source file
//
// Returns:
//   - glow.Shader: the shader, holding one reference
//   - FileSource: the file source feeding the shader, for reloading or watching
//   - error: error if the file cannot be read
func CreateShaderFromFile(ctx glow.Context, typ gl.Enum, path string) (glow.Shader, FileSource, error) {
	src, err := NewFileSource(path)
	if err != nil {
		return nil, nil, err
	}
	return glow.NewShaderWithSource(ctx, typ, src), src, nil
}
