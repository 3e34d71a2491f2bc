package glowutils

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Camera holds a look-at view and a perspective projection. Matrices are recomputed
// lazily: setters only mark the camera dirty and the next matrix getter rebuilds them.
type Camera interface {
	// Eye returns the camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// SetEye sets the camera position.
	//
	// Parameters:
	//   - eye: the eye position
	SetEye(eye mgl32.Vec3)

	// Center returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: the center
	Center() mgl32.Vec3

	// SetCenter sets the look-at point.
	//
	// Parameters:
	//   - center: the center
	SetCenter(center mgl32.Vec3)

	// Up returns the up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// SetUp sets the up vector.
	//
	// Parameters:
	//   - up: the up vector
	SetUp(up mgl32.Vec3)

	// Fovy returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: the field of view
	Fovy() float32

	// SetFovy sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fovy: the field of view
	SetFovy(fovy float32)

	// ZNear returns the near plane distance.
	//
	// Returns:
	//   - float32: the near distance
	ZNear() float32

	// SetZNear sets the near plane distance.
	//
	// Parameters:
	//   - zNear: the near distance
	SetZNear(zNear float32)

	// ZFar returns the far plane distance.
	//
	// Returns:
	//   - float32: the far distance
	ZFar() float32

	// SetZFar sets the far plane distance.
	//
	// Parameters:
	//   - zFar: the far distance
	SetZFar(zFar float32)

	// Viewport returns the viewport size in pixels.
	//
	// Returns:
	//   - width, height: the viewport size
	Viewport() (width, height int32)

	// SetViewport sets the viewport size, which determines the aspect ratio.
	//
	// Parameters:
	//   - width, height: the viewport size
	SetViewport(width, height int32)

	// Aspect returns width / height of the viewport, or 1 for an empty viewport.
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// View returns the view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	View() mgl32.Mat4

	// ViewInverted returns the inverse of the view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse view matrix
	ViewInverted() mgl32.Mat4

	// Projection returns the projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	Projection() mgl32.Mat4

	// ProjectionInverted returns the inverse of the projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse projection matrix
	ProjectionInverted() mgl32.Mat4

	// ViewProjection returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjection() mgl32.Mat4

	// ViewProjectionInverted returns the inverse of ViewProjection.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse combined matrix
	ViewProjectionInverted() mgl32.Mat4

	// NormalMatrix returns the inverse transpose of the upper 3x3 of the view matrix.
	//
	// Returns:
	//   - mgl32.Mat3: the normal matrix
	NormalMatrix() mgl32.Mat3

	// Unproject maps a window position and depth buffer value back into world space.
	// The window origin is the lower left corner.
	//
	// Parameters:
	//   - x, y: the window position in pixels
	//   - depth: the depth buffer value in [0, 1]
	//
	// Returns:
	//   - mgl32.Vec3: the world position
	//   - error: error if the view-projection is singular
	Unproject(x, y int32, depth float32) (mgl32.Vec3, error)

	// Frustum returns the clipping planes of the current view-projection.
	//
	// Returns:
	//   - Frustum: the six planes, normals pointing inside
	Frustum() Frustum
}

// camera implements Camera.
type camera struct {
	mu *sync.Mutex

	eye    mgl32.Vec3
	center mgl32.Vec3
	up     mgl32.Vec3

	fovy  float32
	zNear float32
	zFar  float32

	width  int32
	height int32

	dirty                  bool
	view                   mgl32.Mat4
	viewInverted           mgl32.Mat4
	projection             mgl32.Mat4
	projectionInverted     mgl32.Mat4
	viewProjection         mgl32.Mat4
	viewProjectionInverted mgl32.Mat4
	normal                 mgl32.Mat3
}

var _ Camera = &camera{}

// NewCamera creates a camera at (0, 0, 1) looking at the origin with a 40 degree field of
// view, near and far planes at 0.1 and 1024, and a 1x1 viewport.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &camera{
		mu:     &sync.Mutex{},
		eye:    mgl32.Vec3{0, 0, 1},
		center: mgl32.Vec3{0, 0, 0},
		up:     mgl32.Vec3{0, 1, 0},
		fovy:   mgl32.DegToRad(40),
		zNear:  0.1,
		zFar:   1024,
		width:  1,
		height: 1,
		dirty:  true,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *camera) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *camera) SetEye(eye mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = eye
	c.dirty = true
}

func (c *camera) Center() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.center
}

func (c *camera) SetCenter(center mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.center = center
	c.dirty = true
}

func (c *camera) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *camera) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.dirty = true
}

func (c *camera) Fovy() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovy
}

func (c *camera) SetFovy(fovy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fovy = fovy
	c.dirty = true
}

func (c *camera) ZNear() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zNear
}

func (c *camera) SetZNear(zNear float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zNear = zNear
	c.dirty = true
}

func (c *camera) ZFar() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zFar
}

func (c *camera) SetZFar(zFar float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zFar = zFar
	c.dirty = true
}

func (c *camera) Viewport() (width, height int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

func (c *camera) SetViewport(width, height int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = width
	c.height = height
	c.dirty = true
}

func (c *camera) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect()
}

func (c *camera) aspect() float32 {
	if c.width <= 0 || c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

func (c *camera) View() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	return c.view
}

func (c *camera) ViewInverted() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	return c.viewInverted
}

func (c *camera) Projection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	return c.projection
}

func (c *camera) ProjectionInverted() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	return c.projectionInverted
}

func (c *camera) ViewProjection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	return c.viewProjection
}

func (c *camera) ViewProjectionInverted() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	return c.viewProjectionInverted
}

func (c *camera) Frustum() Frustum {
	return NewFrustum(c.ViewProjection())
}

func (c *camera) NormalMatrix() mgl32.Mat3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	return c.normal
}

func (c *camera) Unproject(x, y int32, depth float32) (mgl32.Vec3, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update()
	if c.viewProjection.Det() == 0 {
		return mgl32.Vec3{}, errors.New("camera: view projection is singular")
	}
	// Normalized device coordinates, then through the inverse view-projection.
	ndc := mgl32.Vec4{
		2*(float32(x)+0.5)/float32(c.width) - 1,
		2*(float32(y)+0.5)/float32(c.height) - 1,
		2*depth - 1,
		1,
	}
	p := c.viewProjectionInverted.Mul4x1(ndc)
	if math32.Abs(p.W()) < 1e-12 {
		return mgl32.Vec3{}, errors.New("camera: point at infinity")
	}
	return p.Vec3().Mul(1 / p.W()), nil
}

// update recomputes every matrix if a parameter changed since the last call.
// Caller must hold the mutex.
func (c *camera) update() {
	if !c.dirty {
		return
	}
	c.view = mgl32.LookAtV(c.eye, c.center, c.up)
	c.projection = mgl32.Perspective(c.fovy, c.aspect(), c.zNear, c.zFar)
	c.viewProjection = c.projection.Mul4(c.view)

	c.viewInverted = c.view.Inv()
	c.projectionInverted = c.projection.Inv()
	c.viewProjectionInverted = c.viewProjection.Inv()
	c.normal = c.view.Mat3().Inv().Transpose()
	c.dirty = false
}
