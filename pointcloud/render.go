package pointcloud

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// RenderSink receives points for drawing. It owns buffers and graphics state:
// callers never depend on drawing to succeed.
type RenderSink interface {
	// UploadPoints replaces points to be drawn
	UploadPoints(points []Point3D)
	// Draw renders uploaded points with given 4x4 projection and view matrices
	Draw(projection, view mat.Matrix)
}

// FrameAccumulator is implemented by UniquePointAccumulator and SyncAccumulator
type FrameAccumulator interface {
	Accumulate(frame Frame) []Point3D
	Observe(frame Frame) []Point3D
	FeatureCount() int
	HasFeatures() bool
	SeenCount() int
}

// DebugCloud binds an accumulator to a render sink: it keeps points of the last updated frame
// and forwards them to the sink.
type DebugCloud struct {
	sink RenderSink
	acc  FrameAccumulator
	// Points of the last frame passed to Update
	points []Point3D
}

// NewDebugCloud creates new instance of DebugCloud. When acc is nil default accumulator is created
func NewDebugCloud(sink RenderSink, acc FrameAccumulator) *DebugCloud {
	if acc == nil {
		acc = NewDefaultUniquePointAccumulator()
	}
	return &DebugCloud{
		sink:   sink,
		acc:    acc,
		points: make([]Point3D, 0),
	}
}

// NewPoints returns points never seen during the session (see UniquePointAccumulator.Accumulate).
// Safe for concurrent use only when the accumulator is (e.g. SyncAccumulator)
func (dc *DebugCloud) NewPoints(frame Frame) []Point3D {
	return dc.acc.Accumulate(frame)
}

// CurrentPoints returns all points of the frame
func (dc *DebugCloud) CurrentPoints(frame Frame) []Point3D {
	return dc.acc.Observe(frame)
}

// Update stores frame's points and uploads them to the sink
func (dc *DebugCloud) Update(frame Frame) {
	dc.points = dc.acc.Observe(frame)
	dc.sink.UploadPoints(dc.points)
}

// ExtractPointCloud returns copy of points of the last updated frame
func (dc *DebugCloud) ExtractPointCloud() []Point3D {
	points := make([]Point3D, len(dc.points))
	copy(points, dc.points)
	return points
}

// FeatureCount returns number of features in the last processed frame
func (dc *DebugCloud) FeatureCount() int {
	return dc.acc.FeatureCount()
}

// FeaturesDetected returns whether the last processed frame had any features
func (dc *DebugCloud) FeaturesDetected() bool {
	return dc.acc.HasFeatures()
}

// Draw passes matrices to the sink
func (dc *DebugCloud) Draw(projection, view mat.Matrix) {
	dc.sink.Draw(projection, view)
}

// Accumulator returns underlying accumulator
func (dc *DebugCloud) Accumulator() FrameAccumulator {
	return dc.acc
}

// ProjectionSink is a headless RenderSink: on Draw it projects uploaded points to normalized device coordinates.
type ProjectionSink struct {
	points    []Point3D
	projected []Point3D
	draws     int
	logger    zerolog.Logger
}

// NewProjectionSink creates new instance of ProjectionSink
func NewProjectionSink(logger zerolog.Logger) *ProjectionSink {
	return &ProjectionSink{
		points:    make([]Point3D, 0),
		projected: make([]Point3D, 0),
		logger:    logger,
	}
}

// UploadPoints copies points into the sink
func (sink *ProjectionSink) UploadPoints(points []Point3D) {
	sink.points = append(sink.points[:0], points...)
}

// Draw computes projection * view * [x y z 1] for every uploaded point and divides by w.
// Points with w == 0 are dropped. Matrices other than 4x4 skip drawing.
func (sink *ProjectionSink) Draw(projection, view mat.Matrix) {
	if !is4x4(projection) || !is4x4(view) {
		pr, pc := projection.Dims()
		vr, vc := view.Dims()
		sink.logger.Warn().Int("projection_rows", pr).Int("projection_cols", pc).Int("view_rows", vr).Int("view_cols", vc).Msg("matrices must be 4x4, skipping draw")
		return
	}
	var mvp mat.Dense
	mvp.Mul(projection, view)

	sink.projected = sink.projected[:0]
	homogeneous := mat.NewVecDense(4, nil)
	var clip mat.VecDense
	for _, p := range sink.points {
		homogeneous.SetVec(0, p.X)
		homogeneous.SetVec(1, p.Y)
		homogeneous.SetVec(2, p.Z)
		homogeneous.SetVec(3, 1.0)
		clip.MulVec(&mvp, homogeneous)
		w := clip.AtVec(3)
		if w == 0 {
			continue
		}
		sink.projected = append(sink.projected, NewPoint3D(clip.AtVec(0)/w, clip.AtVec(1)/w, clip.AtVec(2)/w))
	}
	sink.draws++
}

// Uploaded returns copy of points uploaded last
func (sink *ProjectionSink) Uploaded() []Point3D {
	points := make([]Point3D, len(sink.points))
	copy(points, sink.points)
	return points
}

// Projected returns copy of points projected by the last successful Draw
func (sink *ProjectionSink) Projected() []Point3D {
	points := make([]Point3D, len(sink.projected))
	copy(points, sink.projected)
	return points
}

// Draws returns number of successful Draw calls
func (sink *ProjectionSink) Draws() int {
	return sink.draws
}

func is4x4(m mat.Matrix) bool {
	r, c := m.Dims()
	return r == 4 && c == 4
}
