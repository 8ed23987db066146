package entity

// Store owns every entity of a world. Iteration follows insertion order.
// A Store is not safe for concurrent use.
type Store struct {
	items  []*Entity
	index  map[ID]int
	nextID ID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index:  make(map[ID]int),
		nextID: 1,
	}
}

// Add inserts a copy of e, assigns it a fresh ID and marks it alive.
func (s *Store) Add(e Entity) ID {
	e.ID = s.nextID
	e.Alive = true
	s.nextID++

	s.index[e.ID] = len(s.items)
	s.items = append(s.items, &e)
	return e.ID
}

// Remove deletes the entity with the given id. Unknown ids are ignored.
func (s *Store) Remove(id ID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.items[i].Alive = false
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	delete(s.index, id)
	s.reindex(i)
}

// Get returns the entity with the given id.
// The pointer stays valid until the entity is removed.
func (s *Store) Get(id ID) (*Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// ForEach calls fn for every entity in insertion order, dead ones included.
// fn must not add or remove entities; mark them dead and Sweep afterwards.
func (s *Store) ForEach(fn func(e *Entity)) {
	for _, e := range s.items {
		fn(e)
	}
}

// Len returns the number of stored entities.
func (s *Store) Len() int {
	return len(s.items)
}

// Count returns the number of alive entities of the given kind.
func (s *Store) Count(k Kind) int {
	n := 0
	for _, e := range s.items {
		if e.Alive && e.Kind == k {
			n++
		}
	}
	return n
}

// First returns the first alive entity of the given kind.
func (s *Store) First(k Kind) (*Entity, bool) {
	for _, e := range s.items {
		if e.Alive && e.Kind == k {
			return e, true
		}
	}
	return nil, false
}

// Sweep removes every dead entity, keeping the order of the rest.
// It returns how many were removed.
func (s *Store) Sweep() int {
	kept := s.items[:0]
	removed := 0
	for _, e := range s.items {
		if e.Alive {
			kept = append(kept, e)
			continue
		}
		delete(s.index, e.ID)
		removed++
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	if removed > 0 {
		s.reindex(0)
	}
	return removed
}

// Clear removes all entities. IDs keep increasing after a Clear.
func (s *Store) Clear() {
	s.items = nil
	s.index = make(map[ID]int)
}

// Snapshot returns copies of all alive entities in insertion order.
func (s *Store) Snapshot() []Entity {
	out := make([]Entity, 0, len(s.items))
	for _, e := range s.items {
		if e.Alive {
			out = append(out, *e)
		}
	}
	return out
}

func (s *Store) reindex(from int) {
	for i := from; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
}
