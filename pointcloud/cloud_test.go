package pointcloud

import (
	"math"
	"testing"
)

func TestCloud(t *testing.T) {
	cloud := NewCloud()
	if _, ok := cloud.Bounds(); ok {
		t.Errorf("empty cloud should have no bounds")
	}
	if _, ok := cloud.Centroid(); ok {
		t.Errorf("empty cloud should have no centroid")
	}
	if _, _, ok := cloud.Nearest(NewPoint3D(0, 0, 0)); ok {
		t.Errorf("empty cloud should have no nearest point")
	}

	cloud.Append([]Point3D{NewPoint3D(0, 0, 0), NewPoint3D(2, -4, 1)})
	cloud.Append([]Point3D{NewPoint3D(4, 1, -1)})
	if cloud.Len() != 3 {
		t.Errorf("incorrect number of points: %d, expected: %d", cloud.Len(), 3)
	}

	bounds, ok := cloud.Bounds()
	if !ok {
		t.Fatal("bounds expected")
	}
	expectedBounds := Box3D{Min: NewPoint3D(0, -4, -1), Max: NewPoint3D(4, 1, 1)}
	if bounds != expectedBounds {
		t.Errorf("wrong bounds: %v, expected: %v", bounds, expectedBounds)
	}

	centroid, _ := cloud.Centroid()
	expectedCentroid := NewPoint3D(2, -1, 0)
	if euclideanDistance3D(centroid, expectedCentroid) > eps {
		t.Errorf("wrong centroid: %v, expected: %v", centroid, expectedCentroid)
	}

	nearest, distance, _ := cloud.Nearest(NewPoint3D(3, 1, 0))
	if nearest != NewPoint3D(4, 1, -1) || math.Abs(distance-math.Sqrt2) > eps {
		t.Errorf("wrong nearest point: %v (distance %v)", nearest, distance)
	}

	points := cloud.Points()
	points[0].X = 100
	if cloud.Points()[0].X != 0 {
		t.Errorf("Points must return a copy")
	}

	cloud.Reset()
	if cloud.Len() != 0 {
		t.Errorf("cloud should be empty after reset")
	}
	cloud.Append([]Point3D{NewPoint3D(5, 5, 5)})
	bounds, _ = cloud.Bounds()
	if bounds.Min != NewPoint3D(5, 5, 5) || bounds.Max != NewPoint3D(5, 5, 5) {
		t.Errorf("bounds should restart after reset: %v", bounds)
	}
}
