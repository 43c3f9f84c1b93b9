package family

// Collection is the in-memory person list kept in insertion order.
// The zero value is ready to use.
type Collection struct {
	people []Person
	index  map[int]int // id -> position in people
	maxID  int
}

// NewCollection builds a collection from records, applying Put to each
func NewCollection(people []Person) *Collection {
	c := &Collection{}
	for _, p := range people {
		c.Put(p)
	}
	return c
}

// Add appends a new record with the next sequential id and returns it.
// The id is len+1, or max+1 when len+1 is already taken by an explicitly
// numbered record.
func (c *Collection) Add(name string, parents [2]int) Person {
	id := len(c.people) + 1
	if _, taken := c.index[id]; taken {
		id = c.maxID + 1
	}
	p := Person{ID: id, Name: name, Parents: parents}
	c.insert(p)
	return p
}

// Put inserts p under its own id, replacing any record with the same id.
// A record with id 0 is assigned one via Add.
func (c *Collection) Put(p Person) Person {
	if p.ID == 0 {
		return c.Add(p.Name, p.Parents)
	}
	if c.Update(p) {
		return p
	}
	c.insert(p)
	return p
}

// Update replaces the record matching p.ID in place. Returns false if no
// record has that id.
func (c *Collection) Update(p Person) bool {
	pos, ok := c.index[p.ID]
	if !ok {
		return false
	}
	c.people[pos] = p
	return true
}

// Get returns the record with the given id
func (c *Collection) Get(id int) (Person, bool) {
	pos, ok := c.index[id]
	if !ok {
		return Person{}, false
	}
	return c.people[pos], true
}

// People returns a copy of all records in collection order
func (c *Collection) People() []Person {
	out := make([]Person, len(c.people))
	copy(out, c.people)
	return out
}

// Len returns the number of records
func (c *Collection) Len() int {
	return len(c.people)
}

func (c *Collection) insert(p Person) {
	if c.index == nil {
		c.index = make(map[int]int)
	}
	c.index[p.ID] = len(c.people)
	c.people = append(c.people, p)
	if p.ID > c.maxID {
		c.maxID = p.ID
	}
}
