package pointcloud

import (
	"github.com/pkg/errors"
)

var (
	// ErrMismatchedFrame is returned when identifiers and coordinates of a raw frame have different lengths
	ErrMismatchedFrame = errors.New("identifiers and points count mismatch")
)

// PointIdentifier is a stable feature identifier assigned by the tracking pipeline.
// It has no ordering semantics: only equality matters.
type PointIdentifier uint64

// FeatureObservation pairs an identifier with the position observed for it
type FeatureObservation struct {
	ID    PointIdentifier
	Point Point3D
}

// Frame is a set of observations belonging to one sensing instant.
// Frames are owned by the caller: nothing in this package modifies or retains them.
type Frame []FeatureObservation

// NewFrame creates frame from parallel arrays of identifiers and points
// (the way tracking pipelines usually expose raw feature points)
func NewFrame(ids []PointIdentifier, points []Point3D) (Frame, error) {
	if len(ids) != len(points) {
		return nil, errors.Wrapf(ErrMismatchedFrame, "identifiers: %d, points: %d", len(ids), len(points))
	}
	frame := make(Frame, len(ids))
	for i := range ids {
		frame[i] = FeatureObservation{
			ID:    ids[i],
			Point: points[i],
		}
	}
	return frame, nil
}

// Len returns number of observations in the frame
func (frame Frame) Len() int {
	return len(frame)
}

// IDs returns identifiers of every observation in frame order (duplicates included)
func (frame Frame) IDs() []PointIdentifier {
	ids := make([]PointIdentifier, len(frame))
	for i := range frame {
		ids[i] = frame[i].ID
	}
	return ids
}

// CurrentPoints returns every point of the frame in the same order, without any filtering.
// Identifiers are discarded. Empty frame gives empty (non-nil) slice.
func CurrentPoints(frame Frame) []Point3D {
	points := make([]Point3D, 0, len(frame))
	for _, observation := range frame {
		points = append(points, observation.Point)
	}
	return points
}
