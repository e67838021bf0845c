package pointcloud

// SeenIdentifierSet is an insertion-ordered set of identifiers.
// It only grows: there is no way to remove an identifier once added.
type SeenIdentifierSet struct {
	index map[PointIdentifier]struct{}
	order []PointIdentifier
}

// NewSeenIdentifierSet creates empty set
func NewSeenIdentifierSet() *SeenIdentifierSet {
	return &SeenIdentifierSet{
		index: make(map[PointIdentifier]struct{}),
		order: make([]PointIdentifier, 0),
	}
}

// Add inserts identifier. Returns false if it has been already in the set
func (set *SeenIdentifierSet) Add(id PointIdentifier) bool {
	if _, ok := set.index[id]; ok {
		return false
	}
	set.index[id] = struct{}{}
	set.order = append(set.order, id)
	return true
}

// Contains checks whether identifier has been added before
func (set *SeenIdentifierSet) Contains(id PointIdentifier) bool {
	_, ok := set.index[id]
	return ok
}

// Len returns number of distinct identifiers
func (set *SeenIdentifierSet) Len() int {
	return len(set.order)
}

// IDs returns copy of identifiers in insertion order
func (set *SeenIdentifierSet) IDs() []PointIdentifier {
	ids := make([]PointIdentifier, len(set.order))
	copy(ids, set.order)
	return ids
}
