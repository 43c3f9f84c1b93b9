package family

// Person is one record of the family document
type Person struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Parents [2]int `json:"parents" yaml:"parents"` // 0 = unknown
}

// HasParents reports whether either parent slot is set
func (p Person) HasParents() bool {
	return p.Parents[0] != 0 || p.Parents[1] != 0
}
