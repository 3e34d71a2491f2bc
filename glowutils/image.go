package glowutils

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/glow"
)

// ErrUnsupportedImage is returned when a file is not in one of the decodable image formats.
var ErrUnsupportedImage = errors.New("unsupported image format")

// decodable lists the file type extensions reported by filetype that have a registered decoder.
var decodable = map[string]bool{
	"png":  true,
	"jpg":  true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"webp": true,
}

// Image is a decoded image converted to tightly packed RGBA8 rows, bottom row first, which
// is the layout texture uploads expect.
type Image struct {
	Path   string
	Format string
	Width  int32
	Height int32
	Pixels []byte
}

// DecodeImage sniffs the format of data and decodes it.
//
// Parameters:
//   - data: the encoded image
//
// Returns:
//   - *Image: the decoded image
//   - error: ErrUnsupportedImage if the format is not decodable, or the decoder's error
func DecodeImage(data []byte) (*Image, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, errors.Wrap(err, "sniff image type")
	}
	if !decodable[kind.Extension] {
		return nil, errors.Wrapf(ErrUnsupportedImage, "file type %q", kind.MIME.Value)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", kind.Extension)
	}
	img := FromImage(src)
	img.Format = kind.Extension
	return img, nil
}

// FromImage converts src to RGBA8, flipping it so the bottom row comes first.
//
// Parameters:
//   - src: the image
//
// Returns:
//   - *Image: the converted image
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)
	return &Image{
		Width:  int32(b.Dx()),
		Height: int32(b.Dy()),
		Pixels: flipRows(rgba.Pix, rgba.Stride, b.Dy()),
	}
}

// Resized returns a copy of img scaled to width x height with bilinear filtering.
//
// Parameters:
//   - width, height: the target size
//
// Returns:
//   - *Image: the scaled image
func (img *Image) Resized(width, height int32) *Image {
	if width == img.Width && height == img.Height {
		return img
	}
	// Pixels are bottom-up; scaling is orientation independent so the rows are reused as is.
	src := &image.NRGBA{Pix: img.Pixels, Stride: int(img.Width) * 4, Rect: image.Rect(0, 0, int(img.Width), int(img.Height))}
	dst := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return &Image{Path: img.Path, Format: img.Format, Width: width, Height: height, Pixels: dst.Pix}
}

func flipRows(pix []byte, stride, rows int) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		copy(out[(rows-1-y)*stride:(rows-y)*stride], pix[y*stride:(y+1)*stride])
	}
	return out
}

// LoadImage reads and decodes the image file at path.
//
// Parameters:
//   - path: the image file
//
// Returns:
//   - *Image: the decoded image
//   - error: error if the file cannot be read or decoded
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read image %s", path)
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load image %s", path)
	}
	img.Path = path
	return img, nil
}

// decodePool runs the decodes of every LoadImages call, one worker per CPU. It lives as
// long as the process.
var (
	decodePool     worker.DynamicWorkerPool
	decodePoolOnce sync.Once
)

func imageDecodePool() worker.DynamicWorkerPool {
	decodePoolOnce.Do(func() {
		decodePool = worker.NewDynamicWorkerPool(max(runtime.NumCPU(), 1), 256, 1*time.Second)
	})
	return decodePool
}

// LoadImages decodes several image files in parallel. Results are in the order of paths;
// the first error encountered (in path order) is returned along with whatever loaded.
//
// Parameters:
//   - paths: the image files
//
// Returns:
//   - []*Image: the images, nil where loading failed
//   - error: the first failure
func LoadImages(paths ...string) ([]*Image, error) {
	images := make([]*Image, len(paths))
	errs := make([]error, len(paths))
	if len(paths) == 0 {
		return images, nil
	}
	pool := imageDecodePool()

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		idx, p := i, path
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				images[idx], errs[idx] = LoadImage(p)
				return nil, errs[idx]
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return images, err
		}
	}
	return images, nil
}

// TextureFromImage creates a TEXTURE_2D holding img as RGBA8 with linear mipmapped
// filtering and edge clamping.
//
// Parameters:
//   - ctx: the owning context
//   - img: the image
//
// Returns:
//   - glow.Texture: the texture, holding one reference
//   - error: error if the upload is rejected
func TextureFromImage(ctx glow.Context, img *Image) (glow.Texture, error) {
	t := glow.NewTexture(ctx, gl.TEXTURE_2D)
	if err := t.Image2D(0, gl.RGBA8, img.Width, img.Height, gl.RGBA, gl.UNSIGNED_BYTE, img.Pixels); err != nil {
		t.Unref()
		return nil, errors.Wrapf(err, "upload %s", img.Path)
	}
	t.SetParameter(gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	t.SetParameter(gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	t.SetParameter(gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	t.SetParameter(gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	t.GenerateMipmap()
	t.SetName(img.Path)
	return t, nil
}

// TextureFromFile loads path and uploads it with TextureFromImage.
//
// Parameters:
//   - ctx: the owning context
//   - path: the image file
//
// Returns:
//   - glow.Texture: the texture, holding one reference
//   - error: error if the file cannot be loaded
func TextureFromFile(ctx glow.Context, path string) (glow.Texture, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return TextureFromImage(ctx, img)
}

// CubeMapFromFiles creates a cube map from six images in glow.CubeMapFaces order
// (+X, -X, +Y, -Y, +Z, -Z). The images are decoded in parallel; faces whose size differs
// from the first one are scaled to match.
//
// Parameters:
//   - ctx: the owning context
//   - paths: the face images
//
// Returns:
//   - glow.Texture: the cube map, holding one reference
//   - error: error if an image cannot be loaded
func CubeMapFromFiles(ctx glow.Context, paths [6]string) (glow.Texture, error) {
	images, err := LoadImages(paths[:]...)
	if err != nil {
		return nil, err
	}

	// Cube map faces are addressed top-down, so the bottom-up rows from FromImage are flipped back.
	w, h := images[0].Width, images[0].Height
	t := glow.NewTexture(ctx, gl.TEXTURE_CUBE_MAP)
	for i, face := range glow.CubeMapFaces {
		img := images[i].Resized(w, h)
		pixels := flipRows(img.Pixels, int(w)*4, int(h))
		if err := t.CubeMapImage(face, 0, gl.RGBA8, w, h, gl.RGBA, gl.UNSIGNED_BYTE, pixels); err != nil {
			t.Unref()
			return nil, errors.Wrapf(err, "upload %s", img.Path)
		}
	}
	t.SetParameter(gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	t.SetParameter(gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	t.SetParameter(gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	t.SetParameter(gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	t.SetParameter(gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	return t, nil
}
