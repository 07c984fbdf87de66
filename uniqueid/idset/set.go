package idset

import (
	"sync"

	"github.com/google/btree"

	"github.com/krew-solutions/unique-id-go/uniqueid/identity"
)

const DefaultDegree = 32

// Set is an ordered set of identity.UniqueId values, iterated in identity.Compare order.
// Holding an id in the set keeps its cell alive.
type Set struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[identity.UniqueId]
}

func New() *Set {
	return NewWithDegree(DefaultDegree)
}

func NewWithDegree(degree int) *Set {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &Set{tree: btree.NewG[identity.UniqueId](degree, identity.UniqueId.Less)}
}

// Add inserts id and reports whether it was absent. The zero id is never stored.
func (s *Set) Add(id identity.UniqueId) bool {
	if id.IsZero() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.tree.ReplaceOrInsert(id)
	return !replaced
}

func (s *Set) Remove(id identity.UniqueId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, removed := s.tree.Delete(id)
	return removed
}

func (s *Set) Has(id identity.UniqueId) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Has(id)
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

func (s *Set) Min() (identity.UniqueId, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Min()
}

func (s *Set) Max() (identity.UniqueId, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Max()
}

// Ascend calls fn for each id in ascending order until fn returns false.
// fn must not modify the set.
func (s *Set) Ascend(fn func(identity.UniqueId) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.Ascend(fn)
}

func (s *Set) Slice() []identity.UniqueId {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]identity.UniqueId, 0, s.tree.Len())
	s.tree.Ascend(func(id identity.UniqueId) bool {
		result = append(result, id)
		return true
	})
	return result
}
