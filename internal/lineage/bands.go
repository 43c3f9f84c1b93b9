package lineage

import "fmt"

// DefaultBandRange is the widest generation shown in the band view
const DefaultBandRange = 3

// Family is the flat result of one resolution: root first, then
// ancestors, then descendants. A person reachable by several paths is
// listed once per path.
type Family struct {
	RootID  int      `json:"root_id"`
	Members []Member `json:"members"`
}

// Band is one generation row of the grouped view
type Band struct {
	Generation int      `json:"generation"`
	Label      string   `json:"label"`
	Members    []Member `json:"members"`
}

// Found reports whether the root existed
func (f Family) Found() bool {
	return len(f.Members) > 0
}

// Root returns the generation 0 member
func (f Family) Root() (Member, bool) {
	if len(f.Members) == 0 {
		return Member{}, false
	}
	return f.Members[0], true
}

// Unique returns a copy listing each person once, at its first occurrence
func (f Family) Unique() Family {
	seen := make(map[int]bool, len(f.Members))
	out := make([]Member, 0, len(f.Members))
	for _, m := range f.Members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return Family{RootID: f.RootID, Members: out}
}

// Bands groups members into generations -bandRange..bandRange, ascending.
// Every band in range is present, possibly empty. Members outside the
// range are left out; see Hidden.
func (f Family) Bands(bandRange int) []Band {
	if bandRange < 0 {
		bandRange = 0
	}
	bands := make([]Band, 0, 2*bandRange+1)
	for g := -bandRange; g <= bandRange; g++ {
		bands = append(bands, Band{Generation: g, Label: BandLabel(g), Members: []Member{}})
	}
	for _, m := range f.Members {
		if m.Generation < -bandRange || m.Generation > bandRange {
			continue
		}
		i := m.Generation + bandRange
		bands[i].Members = append(bands[i].Members, m)
	}
	return bands
}

// Hidden counts members that fall outside -bandRange..bandRange
func (f Family) Hidden(bandRange int) int {
	if bandRange < 0 {
		bandRange = 0
	}
	n := 0
	for _, m := range f.Members {
		if m.Generation < -bandRange || m.Generation > bandRange {
			n++
		}
	}
	return n
}

// BandLabel names a generation offset ("Parents", "Grandchildren", ...)
func BandLabel(generation int) string {
	if generation == 0 {
		return "Self"
	}

	base, grand := "Parents", "parents"
	depth := -generation
	if generation > 0 {
		base, grand = "Children", "children"
		depth = generation
	}

	switch depth {
	case 1:
		return base
	case 2:
		return "Grand" + grand
	case 3:
		return "Great-grand" + grand
	default:
		return fmt.Sprintf("%dx-great-grand%s", depth-2, grand)
	}
}
