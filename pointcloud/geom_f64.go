package pointcloud

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3D is a feature point position in the tracking session's world space
type Point3D struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{
		X: x,
		Y: y,
		Z: z,
	}
}

func NewPoint3DFrom(vec r3.Vec) Point3D {
	return Point3D{
		X: vec.X,
		Y: vec.Y,
		Z: vec.Z,
	}
}

// Vec returns point as gonum's 3D vector
func (p Point3D) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Box3D is an axis-aligned bounding box
type Box3D struct {
	Min Point3D
	Max Point3D
}

// Box returns bounding box as gonum's r3.Box
func (b Box3D) Box() r3.Box {
	return r3.Box{Min: b.Min.Vec(), Max: b.Max.Vec()}
}

// Size returns extent of the box along each axis
func (b Box3D) Size() Point3D {
	return NewPoint3DFrom(r3.Sub(b.Max.Vec(), b.Min.Vec()))
}

// Contains reports whether point lies inside the box (borders included)
func (b Box3D) Contains(p Point3D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// extend grows the box so it contains the given point
func (b Box3D) extend(p Point3D) Box3D {
	return Box3D{
		Min: Point3D{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Point3D{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

func euclideanDistance3D(p1, p2 Point3D) float64 {
	return r3.Norm(r3.Sub(p1.Vec(), p2.Vec()))
}
