package lineage

import (
	"sort"

	"famtree/kin/internal/family"
)

// Snapshot is a read-only index over a person collection with precomputed
// child lists. Child lists keep collection order.
type Snapshot struct {
	People   []family.Person
	ByID     map[int]family.Person
	Children map[int][]family.Person // parent id -> children
}

// NewSnapshot indexes people. When ids repeat, the first record wins the
// lookup; every record still contributes to child lists.
func NewSnapshot(people []family.Person) *Snapshot {
	byID := make(map[int]family.Person, len(people))
	children := make(map[int][]family.Person)

	for _, p := range people {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	for _, p := range people {
		for slot, pid := range p.Parents {
			if pid == 0 {
				continue
			}
			// [5,5] lists one parent, not two
			if slot == 1 && pid == p.Parents[0] {
				continue
			}
			children[pid] = append(children[pid], p)
		}
	}

	return &Snapshot{
		People:   people,
		ByID:     byID,
		Children: children,
	}
}

// Lookup returns the person with the given id
func (s *Snapshot) Lookup(id int) (family.Person, bool) {
	p, ok := s.ByID[id]
	return p, ok
}

// IDs returns a sorted list of all person ids (for deterministic output)
func (s *Snapshot) IDs() []int {
	ids := make([]int, 0, len(s.ByID))
	for id := range s.ByID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
