package glowutils

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/glow/common"
)

// OrbitController moves a Camera around its center using spherical coordinates
// (radius, azimuth, elevation). Every change is written straight to the camera's eye and
// center.
type OrbitController interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera
	Camera() Camera

	// Orbit rotates the camera around the center. Elevation is clamped to its limits.
	//
	// Parameters:
	//   - dAzimuth: the horizontal rotation in radians
	//   - dElevation: the vertical rotation in radians
	Orbit(dAzimuth, dElevation float32)

	// Drag orbits by a mouse movement in pixels, scaled by the mouse sensitivity.
	//
	// Parameters:
	//   - dx, dy: the cursor movement
	Drag(dx, dy float32)

	// Zoom moves toward the center. Positive delta zooms in; the radius is clamped.
	//
	// Parameters:
	//   - delta: the zoom amount, scaled by the zoom speed
	Zoom(delta float32)

	// Pan moves eye and center together along the camera's right and up axes.
	//
	// Parameters:
	//   - dx, dy: the pan amount, scaled by the pan speed
	Pan(dx, dy float32)

	// SetCenter moves the orbit pivot.
	//
	// Parameters:
	//   - center: the new pivot
	SetCenter(center mgl32.Vec3)

	// Radius returns the distance between eye and center.
	//
	// Returns:
	//   - float32: the radius
	Radius() float32

	// SetRadius sets the distance between eye and center, clamped to the limits.
	//
	// Parameters:
	//   - radius: the radius
	SetRadius(radius float32)

	// Azimuth returns the horizontal angle around the Y axis in radians.
	//
	// Returns:
	//   - float32: the azimuth
	Azimuth() float32

	// Elevation returns the angle above the horizontal plane in radians.
	//
	// Returns:
	//   - float32: the elevation
	Elevation() float32

	// Reset restores the initial radius, azimuth, elevation and center.
	Reset()
}

type orbitState struct {
	center    mgl32.Vec3
	radius    float32
	azimuth   float32
	elevation float32
}

// orbitController implements OrbitController.
type orbitController struct {
	mu     *sync.Mutex
	camera Camera

	orbitState
	initial orbitState

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32
}

var _ OrbitController = &orbitController{}

// NewOrbitController creates a controller for cam and places the camera according to the
// initial orbit state.
//
// Parameters:
//   - cam: the camera to move
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the controller
func NewOrbitController(cam Camera, options ...OrbitControllerBuilderOption) OrbitController {
	oc := &orbitController{
		mu:     &sync.Mutex{},
		camera: cam,
		orbitState: orbitState{
			center:    cam.Center(),
			radius:    cam.Eye().Sub(cam.Center()).Len(),
			elevation: math32.Pi / 6,
		},

		minRadius:    0.1,
		maxRadius:    1000,
		minElevation: -math32.Pi/2 + 0.05,
		maxElevation: math32.Pi/2 - 0.05,

		mouseSensitivity: 0.005,
		zoomSpeed:        1,
		panSpeed:         1,
	}
	for _, option := range options {
		option(oc)
	}
	oc.radius = common.Clamp(oc.radius, oc.minRadius, oc.maxRadius)
	oc.elevation = common.Clamp(oc.elevation, oc.minElevation, oc.maxElevation)
	oc.initial = oc.orbitState
	oc.apply()
	return oc
}

// apply writes the spherical coordinates to the camera. Caller must hold the mutex.
func (oc *orbitController) apply() {
	sinAzim, cosAzim := math32.Sincos(oc.azimuth)
	sinElev, cosElev := math32.Sincos(oc.elevation)
	eye := oc.center.Add(mgl32.Vec3{
		oc.radius * cosElev * sinAzim,
		oc.radius * sinElev,
		oc.radius * cosElev * cosAzim,
	})
	oc.camera.SetCenter(oc.center)
	oc.camera.SetEye(eye)
}

func (oc *orbitController) Camera() Camera {
	return oc.camera
}

func (oc *orbitController) Orbit(dAzimuth, dElevation float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.azimuth += dAzimuth
	oc.elevation = common.Clamp(oc.elevation+dElevation, oc.minElevation, oc.maxElevation)
	oc.apply()
}

func (oc *orbitController) Drag(dx, dy float32) {
	oc.Orbit(-dx*oc.mouseSensitivity, dy*oc.mouseSensitivity)
}

func (oc *orbitController) Zoom(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.radius = common.Clamp(oc.radius-delta*oc.zoomSpeed, oc.minRadius, oc.maxRadius)
	oc.apply()
}

func (oc *orbitController) Pan(dx, dy float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	// Columns of the inverted view are the camera's right and up axes in world space.
	inv := oc.camera.ViewInverted()
	right := inv.Col(0).Vec3()
	up := inv.Col(1).Vec3()
	oc.center = oc.center.Add(right.Mul(dx * oc.panSpeed)).Add(up.Mul(dy * oc.panSpeed))
	oc.apply()
}

func (oc *orbitController) SetCenter(center mgl32.Vec3) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.center = center
	oc.apply()
}

func (oc *orbitController) Radius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.radius
}

func (oc *orbitController) SetRadius(radius float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.radius = common.Clamp(radius, oc.minRadius, oc.maxRadius)
	oc.apply()
}

func (oc *orbitController) Azimuth() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.azimuth
}

func (oc *orbitController) Elevation() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.elevation
}

func (oc *orbitController) Reset() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.orbitState = oc.initial
	oc.apply()
}
