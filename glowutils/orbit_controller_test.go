package glowutils

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestOrbitControllerPlacesCamera(t *testing.T) {
	r := require.New(t)
	cam := NewCamera()
	oc := NewOrbitController(cam, WithOrbit(10, math32.Pi/2, 0))

	r.Same(cam, oc.Camera())
	r.InDelta(10, oc.Radius(), 1e-5)
	r.True(cam.Eye().ApproxEqualThreshold(mgl32.Vec3{10, 0, 0}, 1e-4))
	r.Equal(mgl32.Vec3{}, cam.Center())
}

func TestOrbitControllerClampsAndResets(t *testing.T) {
	r := require.New(t)
	cam := NewCamera()
	oc := NewOrbitController(cam,
		WithOrbit(5, 0, 0),
		WithRadiusLimits(2, 8),
		WithElevationLimits(-0.5, 0.5),
		WithSpeeds(0.01, 2, 1),
	)

	oc.Orbit(0, 3)
	r.InDelta(0.5, oc.Elevation(), 1e-6)

	oc.Zoom(10)
	r.InDelta(2, oc.Radius(), 1e-6)
	oc.SetRadius(100)
	r.InDelta(8, oc.Radius(), 1e-6)

	oc.Drag(10, -10)
	r.InDelta(-0.1, oc.Azimuth(), 1e-6)
	r.InDelta(0.4, oc.Elevation(), 1e-6)

	oc.Reset()
	r.InDelta(5, oc.Radius(), 1e-6)
	r.Zero(oc.Azimuth())
	r.Zero(oc.Elevation())
	r.True(cam.Eye().ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-4))
}

func TestOrbitControllerPanMovesCenterInViewPlane(t *testing.T) {
	r := require.New(t)
	cam := NewCamera()
	oc := NewOrbitController(cam, WithOrbit(5, 0, 0), WithOrbitCenter(mgl32.Vec3{1, 1, 1}))

	oc.Pan(2, 3)
	r.True(cam.Center().ApproxEqualThreshold(mgl32.Vec3{3, 4, 1}, 1e-4))
	r.True(cam.Eye().ApproxEqualThreshold(mgl32.Vec3{3, 4, 6}, 1e-4))

	oc.SetCenter(mgl32.Vec3{})
	r.True(cam.Eye().ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-4))
}

func TestOrbitControllerMovesCamera(t *testing.T) {
	r := require.New(t)
	c := NewCamera()
	oc := NewOrbitController(c,
		WithOrbit(10, 0, 0),
		WithRadiusLimits(2, 20),
		WithElevationLimits(-1, 1),
	)
	r.Same(c, oc.Camera())
	r.InDelta(10, c.Eye().Z(), 1e-5)
	r.InDelta(10, c.Eye().Sub(c.Center()).Len(), 1e-5)

	oc.Orbit(math32.Pi/2, 0)
	r.InDelta(10, c.Eye().X(), 1e-4)
	r.InDelta(0, c.Eye().Z(), 1e-4)

	oc.Orbit(0, 5)
	r.Equal(float32(1), oc.Elevation())

	oc.Zoom(100)
	r.Equal(float32(2), oc.Radius())
	oc.SetRadius(50)
	r.Equal(float32(20), oc.Radius())
	r.InDelta(20, c.Eye().Sub(c.Center()).Len(), 1e-4)

	oc.SetCenter(mgl32.Vec3{1, 1, 1})
	r.Equal(mgl32.Vec3{1, 1, 1}, c.Center())
	r.InDelta(20, c.Eye().Sub(c.Center()).Len(), 1e-4)

	oc.Reset()
	r.Equal(float32(10), oc.Radius())
	r.Equal(float32(0), oc.Azimuth())
	r.Equal(mgl32.Vec3{}, c.Center())
}

func TestOrbitControllerPanAndDrag(t *testing.T) {
	r := require.New(t)
	c := NewCamera()
	oc := NewOrbitController(c, WithOrbit(5, 0, 0), WithSpeeds(0.01, 1, 2))

	oc.Pan(1, 0)
	// Looking down -Z, the camera's right axis is +X.
	r.InDelta(2, c.Center().X(), 1e-4)
	r.InDelta(2, c.Eye().X(), 1e-4)
	r.InDelta(5, c.Eye().Sub(c.Center()).Len(), 1e-4)

	oc.Drag(-100, 0)
	r.InDelta(1, oc.Azimuth(), 1e-5)
}
