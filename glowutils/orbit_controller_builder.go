package glowutils

import "github.com/go-gl/mathgl/mgl32"

type OrbitControllerBuilderOption func(*orbitController)

// WithOrbit sets the initial spherical coordinates.
//
// Parameters:
//   - radius: the distance from the center
//   - azimuth: the horizontal angle in radians
//   - elevation: the vertical angle in radians
//
// Returns:
//   - OrbitControllerBuilderOption: a function that sets the orbit
func WithOrbit(radius, azimuth, elevation float32) OrbitControllerBuilderOption {
	return func(oc *orbitController) {
		oc.radius = radius
		oc.azimuth = azimuth
		oc.elevation = elevation
	}
}

// WithOrbitCenter sets the initial pivot.
//
// Parameters:
//   - center: the pivot
//
// Returns:
//   - OrbitControllerBuilderOption: a function that sets the pivot
func WithOrbitCenter(center mgl32.Vec3) OrbitControllerBuilderOption {
	return func(oc *orbitController) {
		oc.center = center
	}
}

// WithRadiusLimits bounds the orbit radius.
//
// Parameters:
//   - minRadius, maxRadius: the bounds
//
// Returns:
//   - OrbitControllerBuilderOption: a function that sets the bounds
func WithRadiusLimits(minRadius, maxRadius float32) OrbitControllerBuilderOption {
	return func(oc *orbitController) {
		oc.minRadius = minRadius
		oc.maxRadius = maxRadius
	}
}

// WithElevationLimits bounds the elevation angle.
//
// Parameters:
//   - minElevation, maxElevation: the bounds in radians
//
// Returns:
//   - OrbitControllerBuilderOption: a function that sets the bounds
func WithElevationLimits(minElevation, maxElevation float32) OrbitControllerBuilderOption {
	return func(oc *orbitController) {
		oc.minElevation = minElevation
		oc.maxElevation = maxElevation
	}
}

// WithSpeeds sets the input multipliers.
//
// Parameters:
//   - mouseSensitivity: radians per pixel for Drag
//   - zoomSpeed: multiplier for Zoom
//   - panSpeed: multiplier for Pan
//
// Returns:
//   - OrbitControllerBuilderOption: a function that sets the speeds
func WithSpeeds(mouseSensitivity, zoomSpeed, panSpeed float32) OrbitControllerBuilderOption {
	return func(oc *orbitController) {
		oc.mouseSensitivity = mouseSensitivity
		oc.zoomSpeed = zoomSpeed
		oc.panSpeed = panSpeed
	}
}
