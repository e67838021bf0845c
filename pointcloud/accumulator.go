package pointcloud

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UniquePointAccumulator collects identifiers of every feature seen during a tracking session
// and reports points which have been observed for the first time.
//
// It is not safe for concurrent use: confine it to a single goroutine or use SyncAccumulator.
type UniquePointAccumulator struct {
	sessionID uuid.UUID
	// All identifiers ever passed to Accumulate
	seen *SeenIdentifierSet
	// Number of observations in the most recently processed frame
	featureCount    int
	framesProcessed int
	logger          zerolog.Logger
	metrics         *Metrics
}

// AccumulatorOption configures UniquePointAccumulator
type AccumulatorOption func(acc *UniquePointAccumulator)

// WithLogger sets logger. Default is no-op logger
func WithLogger(logger zerolog.Logger) AccumulatorOption {
	return func(acc *UniquePointAccumulator) {
		acc.logger = logger
	}
}

// WithMetrics sets Prometheus collectors to be updated on every accumulated frame
func WithMetrics(metrics *Metrics) AccumulatorOption {
	return func(acc *UniquePointAccumulator) {
		acc.metrics = metrics
	}
}

// WithSessionID overrides randomly generated session identifier
func WithSessionID(sessionID uuid.UUID) AccumulatorOption {
	return func(acc *UniquePointAccumulator) {
		acc.sessionID = sessionID
	}
}

// NewDefaultUniquePointAccumulator creates accumulator with empty state, no logging and no metrics
func NewDefaultUniquePointAccumulator() *UniquePointAccumulator {
	return NewUniquePointAccumulator()
}

// NewUniquePointAccumulator creates new instance of UniquePointAccumulator
func NewUniquePointAccumulator(options ...AccumulatorOption) *UniquePointAccumulator {
	acc := &UniquePointAccumulator{
		sessionID: uuid.New(),
		seen:      NewSeenIdentifierSet(),
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(acc)
	}
	return acc
}

// Accumulate returns points of the frame whose identifiers have never been passed to this accumulator before
// and merges frame's identifiers into the seen set.
//
// Every occurrence of a new identifier produces a point, so a frame repeating an identifier
// with different coordinates gives several points for it. Points are ordered by first occurrence of
// their identifier in the frame, then by frame order.
func (acc *UniquePointAccumulator) Accumulate(frame Frame) []Point3D {
	acc.featureCount = len(frame)
	acc.framesProcessed++

	// Group occurrences by identifier
	occurrences := make(map[PointIdentifier][]int, len(frame))
	currentIDs := make([]PointIdentifier, 0, len(frame))
	for i := range frame {
		id := frame[i].ID
		if _, ok := occurrences[id]; !ok {
			currentIDs = append(currentIDs, id)
		}
		occurrences[id] = append(occurrences[id], i)
	}

	// currentIDs holds distinct values, so Add reports membership as it was before this frame
	newIDs := make([]PointIdentifier, 0)
	for _, id := range currentIDs {
		if acc.seen.Add(id) {
			newIDs = append(newIDs, id)
		}
	}

	newPoints := make([]Point3D, 0, len(newIDs))
	for _, id := range newIDs {
		indices := occurrences[id]
		if len(indices) == 0 {
			acc.logger.Debug().Str("session", acc.sessionID.String()).Uint64("id", uint64(id)).Msg("no coordinates for identifier, skipping")
			continue
		}
		for _, idx := range indices {
			newPoints = append(newPoints, frame[idx].Point)
		}
	}

	acc.metrics.observe(len(frame), len(newPoints), len(newIDs))
	acc.logger.Debug().
		Str("session", acc.sessionID.String()).
		Int("features", len(frame)).
		Int("new_ids", len(newIDs)).
		Int("new_points", len(newPoints)).
		Int("seen", acc.seen.Len()).
		Msg("frame accumulated")
	return newPoints
}

// AccumulateInto accumulates frame and appends new points to the given cloud.
// Returns number of appended points
func (acc *UniquePointAccumulator) AccumulateInto(frame Frame, cloud *Cloud) int {
	newPoints := acc.Accumulate(frame)
	cloud.Append(newPoints)
	return len(newPoints)
}

// Observe records frame as the most recently processed one and returns its current points.
// Seen identifiers are left untouched
func (acc *UniquePointAccumulator) Observe(frame Frame) []Point3D {
	acc.featureCount = len(frame)
	return CurrentPoints(frame)
}

// FeatureCount returns number of observations in the most recently processed frame
func (acc *UniquePointAccumulator) FeatureCount() int {
	return acc.featureCount
}

// HasFeatures returns whether the most recently processed frame had any observations
func (acc *UniquePointAccumulator) HasFeatures() bool {
	return acc.featureCount > 0
}

// SeenCount returns number of distinct identifiers observed since creation
func (acc *UniquePointAccumulator) SeenCount() int {
	return acc.seen.Len()
}

// SeenIDs returns every observed identifier in order of first appearance
func (acc *UniquePointAccumulator) SeenIDs() []PointIdentifier {
	return acc.seen.IDs()
}

// HasSeen checks whether identifier has been accumulated before
func (acc *UniquePointAccumulator) HasSeen(id PointIdentifier) bool {
	return acc.seen.Contains(id)
}

// FramesProcessed returns number of Accumulate calls
func (acc *UniquePointAccumulator) FramesProcessed() int {
	return acc.framesProcessed
}

// SessionID returns accumulator's session identifier
func (acc *UniquePointAccumulator) SessionID() uuid.UUID {
	return acc.sessionID
}
