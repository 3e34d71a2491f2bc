package glowwindow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContextFormatIsValid(t *testing.T) {
	f := NewContextFormat()
	assert.Empty(t, f.Validate())
	assert.Equal(t, "OpenGL 4.3 core forward-compatible debug", f.String())
}

func TestContextFormatValidateAdjusts(t *testing.T) {
	r := require.New(t)

	f := NewContextFormat()
	f.Version = Version{3, 5}
	f.Debug = false
	f.DepthBits = 48
	f.Samples = -2
	f.SwapInterval = 7
	fixes := f.Validate()
	r.Len(fixes, 4)
	r.Equal(Version{3, 3}, f.Version)
	r.Equal(32, f.DepthBits)
	r.Zero(f.Samples)
	r.Equal(VerticalSyncronization, f.SwapInterval)
	r.Empty(f.Validate())

	old := NewContextFormat()
	old.Version = Version{2, 1}
	old.Validate()
	r.Equal(AnyProfile, old.Profile)
	r.False(old.ForwardCompatible)

	compat := NewContextFormat()
	compat.Profile = CompatibilityProfile
	compat.Validate()
	r.False(compat.ForwardCompatible)
}

func TestNearestValidVersion(t *testing.T) {
	assert.Equal(t, Version{4, 6}, nearestValidVersion(Version{4, 9}))
	assert.Equal(t, Version{2, 1}, nearestValidVersion(Version{2, 7}))
	assert.Equal(t, Version{4, 1}, nearestValidVersion(Version{4, 1}))
	assert.Equal(t, Version{1, 0}, nearestValidVersion(Version{0, 3}))
	assert.True(t, Version{3, 3}.Less(Version{4, 0}))
	assert.False(t, Version{4, 0}.Less(Version{4, 0}))
}

func TestContextFormatTOMLRoundTrip(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "context.toml")

	f := NewContextFormat()
	f.Version = Version{3, 3}
	f.Profile = CompatibilityProfile
	f.ForwardCompatible = false
	f.Samples = 4
	f.SwapBehavior = SingleBuffering
	f.SwapInterval = NoVerticalSyncronization
	r.NoError(SaveContextFormat(path, f))

	loaded, err := LoadContextFormat(path)
	r.NoError(err)
	r.Equal(f, loaded)
}

func TestLoadContextFormatKeepsDefaultsForMissingKeys(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "context.toml")
	r.NoError(os.WriteFile(path, []byte("profile = \"any\"\nsamples = 8\n\n[version]\nmajor = 3\nminor = 2\n"), 0o644))

	f, err := LoadContextFormat(path)
	r.NoError(err)
	r.Equal(Version{3, 2}, f.Version)
	r.Equal(AnyProfile, f.Profile)
	r.Equal(8, f.Samples)
	r.Equal(24, f.DepthBits)
	r.Equal(DoubleBuffering, f.SwapBehavior)
}

func TestLoadContextFormatErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadContextFormat(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("profile = \"legacy\"\n"), 0o644))
	_, err = LoadContextFormat(bad)
	assert.ErrorContains(t, err, "legacy")
}
