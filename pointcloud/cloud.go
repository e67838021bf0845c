package pointcloud

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Cloud is a cumulative point cloud grown from accumulated batches.
// It is owned by the caller and not safe for concurrent use.
type Cloud struct {
	points []Point3D
	bounds Box3D
	// Sum of all points, used for centroid
	sum r3.Vec
}

// NewCloud creates empty cloud
func NewCloud() *Cloud {
	return &Cloud{
		points: make([]Point3D, 0),
	}
}

// Append adds points to the cloud
func (cloud *Cloud) Append(points []Point3D) {
	for _, p := range points {
		if len(cloud.points) == 0 {
			cloud.bounds = Box3D{Min: p, Max: p}
		} else {
			cloud.bounds = cloud.bounds.extend(p)
		}
		cloud.sum = r3.Add(cloud.sum, p.Vec())
		cloud.points = append(cloud.points, p)
	}
}

// Points returns copy of cloud's points in order of appending
func (cloud *Cloud) Points() []Point3D {
	points := make([]Point3D, len(cloud.points))
	copy(points, cloud.points)
	return points
}

// Len returns number of points in the cloud
func (cloud *Cloud) Len() int {
	return len(cloud.points)
}

// Bounds returns axis-aligned bounding box. False if cloud is empty
func (cloud *Cloud) Bounds() (Box3D, bool) {
	if len(cloud.points) == 0 {
		return Box3D{}, false
	}
	return cloud.bounds, true
}

// Centroid returns mean of all points. False if cloud is empty
func (cloud *Cloud) Centroid() (Point3D, bool) {
	if len(cloud.points) == 0 {
		return Point3D{}, false
	}
	return NewPoint3DFrom(r3.Scale(1.0/float64(len(cloud.points)), cloud.sum)), true
}

// Nearest returns the closest point of the cloud to target and distance to it. False if cloud is empty
func (cloud *Cloud) Nearest(target Point3D) (Point3D, float64, bool) {
	if len(cloud.points) == 0 {
		return Point3D{}, 0, false
	}
	best := cloud.points[0]
	bestDistance := euclideanDistance3D(best, target)
	for _, p := range cloud.points[1:] {
		distance := euclideanDistance3D(p, target)
		if distance < bestDistance {
			best = p
			bestDistance = distance
		}
	}
	return best, bestDistance, true
}

// Reset removes all points
func (cloud *Cloud) Reset() {
	cloud.points = cloud.points[:0]
	cloud.bounds = Box3D{}
	cloud.sum = r3.Vec{}
}
