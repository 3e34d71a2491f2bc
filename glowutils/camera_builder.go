package glowutils

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*camera)

// WithEye sets the camera position.
//
// Parameters:
//   - eye: the eye position
//
// Returns:
//   - CameraBuilderOption: a function that sets the eye position
func WithEye(eye mgl32.Vec3) CameraBuilderOption {
	return func(c *camera) {
		c.eye = eye
	}
}

// WithCenter sets the look-at point.
//
// Parameters:
//   - center: the center
//
// Returns:
//   - CameraBuilderOption: a function that sets the center
func WithCenter(center mgl32.Vec3) CameraBuilderOption {
	return func(c *camera) {
		c.center = center
	}
}

// WithUp sets the up vector.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the up vector
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *camera) {
		c.up = up
	}
}

// WithFovy sets the vertical field of view in radians.
//
// Parameters:
//   - fovy: the field of view
//
// Returns:
//   - CameraBuilderOption: a function that sets the field of view
func WithFovy(fovy float32) CameraBuilderOption {
	return func(c *camera) {
		c.fovy = fovy
	}
}

// WithClipPlanes sets the near and far plane distances.
//
// Parameters:
//   - zNear: the near distance
//   - zFar: the far distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClipPlanes(zNear, zFar float32) CameraBuilderOption {
	return func(c *camera) {
		c.zNear = zNear
		c.zFar = zFar
	}
}

// WithViewport sets the viewport size.
//
// Parameters:
//   - width, height: the viewport size in pixels
//
// Returns:
//   - CameraBuilderOption: a function that sets the viewport
func WithViewport(width, height int32) CameraBuilderOption {
	return func(c *camera) {
		c.width = width
		c.height = height
	}
}
