// Package lineage derives ancestors and descendants of a person from a
// flat collection linked by parent references.
//
// Results pair each person with a generation offset from the root
// (negative for ancestors, positive for descendants). The input collection
// is never modified, so resolving several roots against the same snapshot
// cannot leak generation labels between passes.
package lineage

import "famtree/kin/internal/family"

// Placeholder names for parent slots that do not resolve to a person
const (
	UnknownName = "Unknown" // slot is 0
	InvalidName = "Invalid" // dangling reference
)

// DefaultMaxDepth is the generation at which traversal stops in both
// directions. Members are labeled strictly inside (-DefaultMaxDepth, DefaultMaxDepth).
const DefaultMaxDepth = 4

// Member is a person paired with its generation relative to a root
type Member struct {
	family.Person
	Generation int `json:"generation"`
}

// Options tunes traversal
type Options struct {
	MaxDepth int
}

// DefaultOptions returns the standard depth bound
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Resolver answers lineage queries over a snapshot
type Resolver struct {
	snap     *Snapshot
	maxDepth int
}

// NewResolver creates a Resolver. A non-positive MaxDepth uses the default.
func NewResolver(snap *Snapshot, opts Options) *Resolver {
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return &Resolver{snap: snap, maxDepth: depth}
}

// ResolveParentNames maps a parent pair to display names using people
func ResolveParentNames(parents [2]int, people []family.Person) [2]string {
	return NewResolver(NewSnapshot(people), DefaultOptions()).ParentNames(parents)
}

// ResolveFamily resolves rootID against people with default options
func ResolveFamily(rootID int, people []family.Person) Family {
	return NewResolver(NewSnapshot(people), DefaultOptions()).Family(rootID)
}

// ParentNames maps each slot to the parent's name, UnknownName for 0, or
// InvalidName when no person has that id. Order is preserved.
func (r *Resolver) ParentNames(parents [2]int) [2]string {
	var names [2]string
	for i, id := range parents {
		switch p, ok := r.snap.Lookup(id); {
		case id == 0:
			names[i] = UnknownName
		case ok:
			names[i] = p.Name
		default:
			names[i] = InvalidName
		}
	}
	return names
}

// Ancestors returns the ancestors of member, labeling its direct parents
// with generation and each further step with one less. Order is pre-order:
// parent 1, its whole ancestry, then parent 2 and its ancestry.
// Zero and dangling parent refs are skipped.
func (r *Resolver) Ancestors(member family.Person, generation int) []Member {
	onPath := map[int]bool{member.ID: true}
	return r.ancestors(member, generation, onPath, nil)
}

func (r *Resolver) ancestors(member family.Person, generation int, onPath map[int]bool, out []Member) []Member {
	if generation <= -r.maxDepth || !member.HasParents() {
		return out
	}
	for _, pid := range member.Parents {
		if pid == 0 || onPath[pid] {
			continue
		}
		parent, ok := r.snap.Lookup(pid)
		if !ok {
			continue
		}
		out = append(out, Member{Person: parent, Generation: generation})

		onPath[pid] = true
		out = r.ancestors(parent, generation-1, onPath, out)
		delete(onPath, pid)
	}
	return out
}

// Descendants returns everyone listing member as a parent, labeled with
// generation, each followed by its own descendants at generation+1.
// Children come in collection order.
func (r *Resolver) Descendants(member family.Person, generation int) []Member {
	onPath := map[int]bool{member.ID: true}
	return r.descendants(member, generation, onPath, nil)
}

func (r *Resolver) descendants(member family.Person, generation int, onPath map[int]bool, out []Member) []Member {
	if generation >= r.maxDepth {
		return out
	}
	for _, child := range r.snap.Children[member.ID] {
		if onPath[child.ID] {
			continue
		}
		out = append(out, Member{Person: child, Generation: generation})

		onPath[child.ID] = true
		out = r.descendants(child, generation+1, onPath, out)
		delete(onPath, child.ID)
	}
	return out
}

// Family resolves the root, its ancestors from generation -1 and its
// descendants from generation +1. An unknown root yields an empty family.
func (r *Resolver) Family(rootID int) Family {
	root, ok := r.snap.Lookup(rootID)
	if !ok {
		return Family{RootID: rootID}
	}

	members := []Member{{Person: root, Generation: 0}}
	members = append(members, r.Ancestors(root, -1)...)
	members = append(members, r.Descendants(root, 1)...)
	return Family{RootID: rootID, Members: members}
}
