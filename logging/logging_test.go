package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	level := Level()
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(level)
	})
	return &buf
}

func TestLevelsWriteStructuredEntries(t *testing.T) {
	require := require.New(t)
	buf := capture(t)
	SetLevel(DebugLevel)

	Fatal().Msg("fatal")
	Critical().Msg("critical")
	Warning().Msg("warning")
	Info().Msg("info")
	Debug().Str("key", "value").Msg("debug")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 5)

	want := []string{"fatal", "error", "warn", "info", "debug"}
	for i, line := range lines {
		var entry map[string]any
		require.NoError(json.Unmarshal([]byte(line), &entry))
		require.Equal(want[i], entry["level"])
		require.Contains(entry, "time")
	}
	require.Contains(lines[4], `"key":"value"`)
}

func TestSetLevelFiltersMessages(t *testing.T) {
	require := require.New(t)
	buf := capture(t)
	SetLevel(WarningLevel)

	Info().Msg("dropped")
	Debug().Msg("dropped")
	Warning().Msg("kept")

	require.NotContains(buf.String(), "dropped")
	require.Contains(buf.String(), "kept")
	require.Equal(WarningLevel, Level())
}

func TestComponentTagsMessages(t *testing.T) {
	require := require.New(t)
	buf := capture(t)
	SetLevel(InfoLevel)

	l := Component("glow")
	l.Info().Msg("hello")

	require.Contains(buf.String(), `"component":"glow"`)
}

func TestSetOutputKeepsLevel(t *testing.T) {
	require := require.New(t)
	capture(t)
	SetLevel(CriticalLevel)

	var second bytes.Buffer
	SetOutput(&second)
	Warning().Msg("dropped")
	Critical().Msg("kept")

	require.Equal(CriticalLevel, Level())
	require.NotContains(second.String(), "dropped")
	require.Contains(second.String(), "kept")
}
