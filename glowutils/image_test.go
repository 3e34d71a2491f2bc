package glowutils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/glow"
)

func TestLoadImageFlipsRows(t *testing.T) {
	r := require.New(t)
	path := writePNG(t, t.TempDir(), "red_top.png", gradient(2, 3))

	img, err := LoadImage(path)
	r.NoError(err)
	r.Equal("png", img.Format)
	r.Equal(path, img.Path)
	r.Equal(int32(2), img.Width)
	r.Equal(int32(3), img.Height)
	r.Len(img.Pixels, 2*3*4)

	// The red top row of the file is the last row of the upload.
	last := img.Pixels[2*2*4:]
	r.Equal([]byte{255, 0, 0, 255, 255, 0, 0, 255}, last)
	r.Equal([]byte{0, 0, 255, 255}, img.Pixels[:4])
}

func TestDecodeImageSniffsFormat(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "image.bin"))
	r.NoError(err)
	r.NoError(bmp.Encode(f, gradient(4, 2)))
	r.NoError(f.Close())

	// The extension does not matter, the content does.
	img, err := LoadImage(filepath.Join(dir, "image.bin"))
	r.NoError(err)
	r.Equal("bmp", img.Format)
	r.Equal(int32(4), img.Width)

	_, err = DecodeImage([]byte("#version 330 core\nvoid main() {}\n"))
	r.True(errors.Is(err, ErrUnsupportedImage))

	_, err = LoadImage(filepath.Join(dir, "missing.png"))
	r.Error(err)
}

func TestImageResized(t *testing.T) {
	r := require.New(t)
	img := FromImage(gradient(4, 4))
	r.Same(img, img.Resized(4, 4))

	small := img.Resized(2, 2)
	r.Equal(int32(2), small.Width)
	r.Equal(int32(2), small.Height)
	r.Len(small.Pixels, 2*2*4)
}

func TestLoadImagesInParallel(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	paths := []string{
		writePNG(t, dir, "a.png", gradient(1, 1)),
		writePNG(t, dir, "b.png", gradient(2, 2)),
		filepath.Join(dir, "missing.png"),
		writePNG(t, dir, "d.png", gradient(4, 4)),
	}

	images, err := LoadImages(paths...)
	r.Error(err)
	r.Len(images, 4)
	r.Equal(int32(1), images[0].Width)
	r.Equal(int32(2), images[1].Width)
	r.Nil(images[2])
	r.Equal(int32(4), images[3].Width)

	images, err = LoadImages(paths[0], paths[1])
	r.NoError(err)
	r.Len(images, 2)

	images, err = LoadImages()
	r.NoError(err)
	r.Empty(images)
}

func TestLoadImagesReusesWorkers(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	paths := []string{
		writePNG(t, dir, "a.png", gradient(1, 1)),
		writePNG(t, dir, "b.png", gradient(2, 2)),
		writePNG(t, dir, "c.png", gradient(3, 3)),
	}

	_, err := LoadImages(paths...)
	r.NoError(err)
	before := runtime.NumGoroutine()

	for range 50 {
		_, err := LoadImages(paths...)
		r.NoError(err)
	}
	r.LessOrEqual(runtime.NumGoroutine(), before+2)
}

func TestTextureFromImage(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	path := writePNG(t, t.TempDir(), "tex.png", gradient(8, 4))

	tex, err := TextureFromFile(ctx, path)
	r.NoError(err)
	w, h, _ := tex.Size()
	r.Equal(int32(8), w)
	r.Equal(int32(4), h)
	r.Equal(gl.RGBA8, tex.InternalFormat())
	r.Equal(path, tex.Name())
	r.Equal(int32(gl.LINEAR_MIPMAP_LINEAR), tex.Parameter(gl.TEXTURE_MIN_FILTER))
	r.Equal(int32(gl.CLAMP_TO_EDGE), tex.Parameter(gl.TEXTURE_WRAP_S))
	r.Equal(1, api.CallCount("GenerateMipmap"))

	_, err = TextureFromFile(ctx, filepath.Join(t.TempDir(), "none.png"))
	r.Error(err)
}

func TestCubeMapFromFiles(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	dir := t.TempDir()
	var paths [6]string
	for i := range paths {
		size := 4
		if i == 5 {
			size = 8
		}
		paths[i] = writePNG(t, dir, string(rune('a'+i))+".png", gradient(size, size))
	}

	tex, err := CubeMapFromFiles(ctx, paths)
	r.NoError(err)
	r.Equal(gl.TEXTURE_CUBE_MAP, tex.Target())
	for _, face := range glow.CubeMapFaces {
		w, h, _, ok := api.TextureLevelOf(tex.ID(), face, 0)
		r.True(ok)
		r.Equal(int32(4), w)
		r.Equal(int32(4), h)
	}

	paths[2] = filepath.Join(dir, "missing.png")
	_, err = CubeMapFromFiles(ctx, paths)
	r.Error(err)
}
