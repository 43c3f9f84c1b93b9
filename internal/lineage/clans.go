package lineage

import (
	"sort"

	"famtree/kin/internal/family"
)

// Clan is a group of people connected through parent links
type Clan struct {
	IDs  []int `json:"ids"` // sorted
	Size int   `json:"size"`
}

// ClanReport splits a collection into disconnected families
type ClanReport struct {
	TotalPeople  int    `json:"total_people"`
	NumClans     int    `json:"num_clans"`
	LargestClan  int    `json:"largest_clan"`
	IsolatedIDs  []int  `json:"isolated_ids"` // no resolvable link either way
	DanglingRefs int    `json:"dangling_refs"`
	Clans        []Clan `json:"clans"`
}

// ComputeClans groups people by connectivity over parent links. Zero and
// dangling refs are ignored; dangling ones are counted. Clans are ordered
// by size, largest first, ties broken by smallest id.
func ComputeClans(people []family.Person) *ClanReport {
	snap := NewSnapshot(people)
	ids := snap.IDs()
	if len(ids) == 0 {
		return &ClanReport{IsolatedIDs: []int{}, Clans: []Clan{}}
	}

	uf := newUnionFind(ids)
	linked := make(map[int]bool)
	dangling := 0
	for _, p := range people {
		for _, pid := range p.Parents {
			if pid == 0 {
				continue
			}
			if _, ok := snap.Lookup(pid); !ok {
				dangling++
				continue
			}
			if pid == p.ID {
				continue
			}
			uf.union(p.ID, pid)
			linked[p.ID] = true
			linked[pid] = true
		}
	}

	var clans []Clan
	isolated := []int{}
	largest := 0
	for _, members := range uf.groups() {
		sort.Ints(members)
		clans = append(clans, Clan{IDs: members, Size: len(members)})
		if len(members) > largest {
			largest = len(members)
		}
		if len(members) == 1 && !linked[members[0]] {
			isolated = append(isolated, members[0])
		}
	}
	sort.Ints(isolated)
	sort.Slice(clans, func(i, j int) bool {
		if clans[i].Size != clans[j].Size {
			return clans[i].Size > clans[j].Size
		}
		return clans[i].IDs[0] < clans[j].IDs[0]
	})

	return &ClanReport{
		TotalPeople:  len(ids),
		NumClans:     len(clans),
		LargestClan:  largest,
		IsolatedIDs:  isolated,
		DanglingRefs: dangling,
		Clans:        clans,
	}
}
