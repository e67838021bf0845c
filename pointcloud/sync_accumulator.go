package pointcloud

import (
	"sync"

	"github.com/google/uuid"
)

// SyncAccumulator is UniquePointAccumulator guarded by a mutex.
// The lock is held for the whole diff-and-merge step, so no identifier is reported new twice.
type SyncAccumulator struct {
	mu  sync.Mutex
	acc *UniquePointAccumulator
}

// NewSyncAccumulator creates new instance of SyncAccumulator
func NewSyncAccumulator(options ...AccumulatorOption) *SyncAccumulator {
	return &SyncAccumulator{
		acc: NewUniquePointAccumulator(options...),
	}
}

// Accumulate see UniquePointAccumulator.Accumulate
func (sa *SyncAccumulator) Accumulate(frame Frame) []Point3D {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.Accumulate(frame)
}

// AccumulateInto see UniquePointAccumulator.AccumulateInto. Cloud is not guarded by the lock
func (sa *SyncAccumulator) AccumulateInto(frame Frame, cloud *Cloud) int {
	newPoints := sa.Accumulate(frame)
	cloud.Append(newPoints)
	return len(newPoints)
}

// Observe see UniquePointAccumulator.Observe
func (sa *SyncAccumulator) Observe(frame Frame) []Point3D {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.Observe(frame)
}

func (sa *SyncAccumulator) FeatureCount() int {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.FeatureCount()
}

func (sa *SyncAccumulator) HasFeatures() bool {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.HasFeatures()
}

func (sa *SyncAccumulator) SeenCount() int {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.SeenCount()
}

func (sa *SyncAccumulator) SeenIDs() []PointIdentifier {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.SeenIDs()
}

func (sa *SyncAccumulator) HasSeen(id PointIdentifier) bool {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.HasSeen(id)
}

func (sa *SyncAccumulator) FramesProcessed() int {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.acc.FramesProcessed()
}

// SessionID is immutable after creation, so no locking needed
func (sa *SyncAccumulator) SessionID() uuid.UUID {
	return sa.acc.SessionID()
}
