package lineage

// unionFind groups person ids with path compression and union by rank
type unionFind struct {
	parent map[int]int
	rank   map[int]int
}

func newUnionFind(ids []int) *unionFind {
	uf := &unionFind{
		parent: make(map[int]int, len(ids)),
		rank:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

// find returns the representative of id's group, compressing the path
func (uf *unionFind) find(id int) int {
	parent, ok := uf.parent[id]
	if !ok || parent == id {
		return id
	}
	root := uf.find(parent)
	uf.parent[id] = root
	return root
}

// union merges the groups of a and b. Returns true if they were separate.
func (uf *unionFind) union(a, b int) bool {
	rootA, rootB := uf.find(a), uf.find(b)
	if rootA == rootB {
		return false
	}
	if uf.rank[rootA] < uf.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	if uf.rank[rootA] == uf.rank[rootB] {
		uf.rank[rootA]++
	}
	return true
}

// groups returns every group as a slice of ids, keyed by representative
func (uf *unionFind) groups() map[int][]int {
	out := make(map[int][]int)
	for id := range uf.parent {
		root := uf.find(id)
		out[root] = append(out[root], id)
	}
	return out
}
