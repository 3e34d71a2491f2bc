package glowutils

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is the plane dot(Normal, p) + Distance = 0.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the distance of p from the plane, positive on the normal's side.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum planes, in the order NewFrustum extracts them.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// Frustum is the view volume of a camera as six planes whose positive half-spaces are inside.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustum extracts the frustum planes of a view-projection matrix.
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProjection: projection * view
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func NewFrustum(viewProjection mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProjection.Rows()
	rows := [6]mgl32.Vec4{
		r3.Add(r0), r3.Sub(r0),
		r3.Add(r1), r3.Sub(r1),
		r3.Add(r2), r3.Sub(r2),
	}

	var f Frustum
	for i, row := range rows {
		p := Plane{Normal: row.Vec3(), Distance: row[3]}
		if length := p.Normal.Len(); length > 0 {
			p.Normal = p.Normal.Mul(1 / length)
			p.Distance /= length
		}
		f.Planes[i] = p
	}
	return f
}

// ContainsPoint reports whether point lies inside or on the frustum.
func (f Frustum) ContainsPoint(point mgl32.Vec3) bool {
	return f.IntersectsSphere(point, 0)
}

// IntersectsSphere reports whether a sphere is at least partially inside the frustum.
// It may report spheres near a frustum corner as intersecting.
func (f Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(center) < -math32.Abs(radius) {
			return false
		}
	}
	return true
}
