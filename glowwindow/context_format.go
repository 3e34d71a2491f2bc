// Package glowwindow opens windows with an OpenGL context and feeds their input to an
// event handler. It is a small helper layer for examples and tools, not a toolkit.
package glowwindow

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/glow/logging"
)

// Profile selects the OpenGL context profile.
type Profile int

const (
	// AnyProfile lets the driver choose; required for versions below 3.2.
	AnyProfile Profile = iota
	// CoreProfile requests a core profile context.
	CoreProfile
	// CompatibilityProfile requests a compatibility profile context.
	CompatibilityProfile
)

var profileNames = map[Profile]string{
	AnyProfile:           "any",
	CoreProfile:          "core",
	CompatibilityProfile: "compatibility",
}

func (p Profile) String() string {
	if s, ok := profileNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

func (p Profile) MarshalText() ([]byte, error) {
	s, ok := profileNames[p]
	if !ok {
		return nil, errors.Errorf("unknown profile %d", int(p))
	}
	return []byte(s), nil
}

func (p *Profile) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for k, v := range profileNames {
		if v == name {
			*p = k
			return nil
		}
	}
	return errors.Errorf("unknown profile %q", name)
}

// SwapBehavior selects single or double buffering.
type SwapBehavior int

const (
	DoubleBuffering SwapBehavior = iota
	SingleBuffering
)

func (s SwapBehavior) MarshalText() ([]byte, error) {
	if s == SingleBuffering {
		return []byte("single"), nil
	}
	return []byte("double"), nil
}

func (s *SwapBehavior) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "double", "":
		*s = DoubleBuffering
	case "single":
		*s = SingleBuffering
	default:
		return errors.Errorf("unknown swap behavior %q", string(text))
	}
	return nil
}

// Version is an OpenGL version number.
type Version struct {
	Major int `toml:"major"`
	Minor int `toml:"minor"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// validVersions lists every released OpenGL version.
var validVersions = []Version{
	{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
	{2, 0}, {2, 1},
	{3, 0}, {3, 1}, {3, 2}, {3, 3},
	{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6},
}

// nearestValidVersion returns v if it was released, otherwise the newest released version
// older than v, or 1.0.
func nearestValidVersion(v Version) Version {
	best := validVersions[0]
	for _, candidate := range validVersions {
		if candidate == v {
			return v
		}
		if candidate.Less(v) {
			best = candidate
		}
	}
	return best
}

// ContextFormat describes the context and default framebuffer a window requests.
// It can be stored as TOML so tools can switch versions without recompiling.
type ContextFormat struct {
	Version           Version      `toml:"version"`
	Profile           Profile      `toml:"profile"`
	ForwardCompatible bool         `toml:"forward_compatible"`
	Debug             bool         `toml:"debug"`
	RedBits           int          `toml:"red_bits"`
	GreenBits         int          `toml:"green_bits"`
	BlueBits          int          `toml:"blue_bits"`
	AlphaBits         int          `toml:"alpha_bits"`
	DepthBits         int          `toml:"depth_bits"`
	StencilBits       int          `toml:"stencil_bits"`
	Samples           int          `toml:"samples"`
	SwapBehavior      SwapBehavior `toml:"swap_behavior"`
	SwapInterval      SwapInterval `toml:"swap_interval"`
}

// NewContextFormat returns the default format: a 4.3 core profile debug context with an
// 8 bit RGBA color buffer, 24 bit depth, 8 bit stencil, double buffering and vsync.
func NewContextFormat() ContextFormat {
	return ContextFormat{
		Version:           Version{4, 3},
		Profile:           CoreProfile,
		ForwardCompatible: true,
		Debug:             true,
		RedBits:           8,
		GreenBits:         8,
		BlueBits:          8,
		AlphaBits:         8,
		DepthBits:         24,
		StencilBits:       8,
		SwapBehavior:      DoubleBuffering,
		SwapInterval:      VerticalSyncronization,
	}
}

// Validate adjusts f to a combination a driver can satisfy and returns a description of
// every adjustment. Each adjustment is also logged as a warning.
//
// Returns:
//   - []string: the adjustments, empty if f was already valid
func (f *ContextFormat) Validate() []string {
	var fixes []string
	fix := func(format string, args ...any) {
		fixes = append(fixes, fmt.Sprintf(format, args...))
	}

	if v := nearestValidVersion(f.Version); v != f.Version {
		fix("version %s does not exist, using %s", f.Version, v)
		f.Version = v
	}
	if f.Profile != AnyProfile && f.Version.Less(Version{3, 2}) {
		fix("profiles require version 3.2 or newer, using any profile for %s", f.Version)
		f.Profile = AnyProfile
	}
	if f.ForwardCompatible && f.Version.Less(Version{3, 0}) {
		fix("forward compatibility requires version 3.0 or newer")
		f.ForwardCompatible = false
	}
	if f.ForwardCompatible && f.Profile == CompatibilityProfile {
		fix("forward compatibility removes the compatibility profile features, disabling it")
		f.ForwardCompatible = false
	}
	if f.Debug && f.Version.Less(Version{4, 3}) {
		fix("debug output requires version 4.3 or newer, the context may not report messages")
	}

	bits := []struct {
		name string
		v    *int
		max  int
	}{
		{"red", &f.RedBits, 16}, {"green", &f.GreenBits, 16}, {"blue", &f.BlueBits, 16},
		{"alpha", &f.AlphaBits, 16}, {"depth", &f.DepthBits, 32}, {"stencil", &f.StencilBits, 8},
		{"samples", &f.Samples, 32},
	}
	for _, b := range bits {
		switch {
		case *b.v < 0:
			fix("%s bits %d is negative, using 0", b.name, *b.v)
			*b.v = 0
		case *b.v > b.max:
			fix("%s bits %d exceeds %d", b.name, *b.v, b.max)
			*b.v = b.max
		}
	}
	if f.SwapInterval < AdaptiveVerticalSyncronization || f.SwapInterval > VerticalSyncronization {
		fix("unknown swap interval %d, using vertical synchronization", int(f.SwapInterval))
		f.SwapInterval = VerticalSyncronization
	}

	log := logging.Component("glowwindow")
	for _, msg := range fixes {
		log.Warn().Str("format", f.String()).Msg(msg)
	}
	return fixes
}

func (f ContextFormat) String() string {
	s := fmt.Sprintf("OpenGL %s %s", f.Version, f.Profile)
	if f.ForwardCompatible {
		s += " forward-compatible"
	}
	if f.Debug {
		s += " debug"
	}
	return s
}

// LoadContextFormat reads a format from a TOML file. Keys missing from the file keep the
// values of NewContextFormat.
//
// Parameters:
//   - path: the TOML file
//
// Returns:
//   - ContextFormat: the format
//   - error: error if the file cannot be read or parsed
func LoadContextFormat(path string) (ContextFormat, error) {
	f := NewContextFormat()
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return f, errors.Wrapf(err, "load context format %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log := logging.Component("glowwindow")
		log.Warn().Str("path", path).Interface("keys", undecoded).Msg("unknown context format keys")
	}
	return f, nil
}

// SaveContextFormat writes f as TOML.
//
// Parameters:
//   - path: the destination file
//   - f: the format
//
// Returns:
//   - error: error if the file cannot be written
func SaveContextFormat(path string, f ContextFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "save context format %s", path)
	}
	defer file.Close()
	if err := toml.NewEncoder(file).Encode(f); err != nil {
		return errors.Wrapf(err, "encode context format %s", path)
	}
	return nil
}
