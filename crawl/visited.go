package crawl

import "github.com/bits-and-blooms/bloom/v3"

// VisitedSet records the nodes a traversal has emitted. It only grows.
//
// An optional Bloom filter can sit in front of the exact set: a filter miss
// proves the node is absent, a hit is confirmed against the map. Answers
// are always exact.
type VisitedSet[N comparable] struct {
	seen   map[N]struct{}
	filter *bloom.BloomFilter
	key    func(N) string
}

type visitedOption[N comparable] func(*VisitedSet[N])

func withBloom[N comparable](key func(N) string, n uint, fpRate float64) visitedOption[N] {
	return func(s *VisitedSet[N]) {
		s.filter = bloom.NewWithEstimates(n, fpRate)
		s.key = key
	}
}

// NewVisitedSet creates an empty VisitedSet.
func NewVisitedSet[N comparable](opts ...visitedOption[N]) *VisitedSet[N] {
	s := &VisitedSet[N]{seen: make(map[N]struct{})}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add marks v as visited.
func (s *VisitedSet[N]) Add(v N) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	if s.filter != nil {
		s.filter.AddString(s.key(v))
	}
}

// Contains reports whether v has been visited.
func (s *VisitedSet[N]) Contains(v N) bool {
	if s.filter != nil && !s.filter.TestString(s.key(v)) {
		return false
	}
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of visited nodes.
func (s *VisitedSet[N]) Len() int {
	return len(s.seen)
}

// EstimatedCount returns the filter's approximation of the number of
// visited nodes, or the exact count when no filter is configured.
func (s *VisitedSet[N]) EstimatedCount() uint {
	if s.filter == nil {
		return uint(len(s.seen))
	}
	return uint(s.filter.ApproximatedSize())
}
