// Package bloom provides race-ID deduplication for complete-event crawls.
// The legacy site links the same race from several discipline tabs, so a
// crawl across a full permit (or a whole season) re-encounters race IDs
// constantly.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenRaces tracks which race IDs a crawl has already fetched.
type SeenRaces struct {
	f *bloom.BloomFilter
}

// NewSeenRaces creates a filter sized for n expected races with the given
// false positive rate. A false positive skips a race that was never fetched,
// so keep the rate small relative to n.
func NewSeenRaces(n uint, fpRate float64) *SeenRaces {
	return &SeenRaces{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Mark records a race ID as fetched.
func (s *SeenRaces) Mark(raceID string) {
	s.f.AddString(raceID)
}

// Seen returns true if the race ID might already have been fetched.
// False positives are possible; false negatives are not.
func (s *SeenRaces) Seen(raceID string) bool {
	return s.f.TestString(raceID)
}

// EstimatedCount returns the approximate number of races marked.
func (s *SeenRaces) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
