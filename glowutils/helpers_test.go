package glowutils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl/gltest"
	"github.com/Carmen-Shannon/glow/glow"
)

func newTestContext(t *testing.T) (glow.Context, *gltest.Functions) {
	t.Helper()
	api := gltest.New()
	return glow.NewContext(api, glow.WithLogger(zerolog.Nop()), glow.WithPanicOnErrors(false)), api
}

// countingListener counts change notifications.
type countingListener struct {
	count int
}

func (l *countingListener) Notify(glow.Changeable) {
	l.count++
}

// writeFile writes text to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

// gradient returns a w x h image whose top row is red and every other row is blue.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{B: 255, A: 255}
		if y == 0 {
			c = color.NRGBA{R: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writePNG encodes img into dir/name.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}
