package object

// Handle identifies an entity in a Store. The generation counter makes a
// handle stale once its slot has been freed, so a held handle can never
// resolve to a different entity later.
type Handle struct {
	index int32
	gen   uint32
}

// Nil is the zero Handle; it never resolves.
var Nil = Handle{index: -1}

// Valid reports whether h was ever issued by a Store.
func (h Handle) Valid() bool {
	return h.index >= 0
}

type slot struct {
	entity Entity
	gen    uint32
	live   bool // participates in iteration
	staged bool // added mid-tick, becomes live at Flush
	doomed bool // removed mid-tick, freed at Flush
}

// Store is an arena-style collection of all live entities. Additions and
// removals during an iteration are deferred to Flush, so no iterator ever
// observes a freed slot and no handle is reused while a callback from the
// same tick still references the old entity.
type Store struct {
	slots  []slot
	free   []int32
	counts [kindCount]int
	dirty  []int32 // staged or doomed slots to settle at Flush
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts an entity and returns its handle. The entity is visible to
// Get immediately but joins iteration only after the next Flush.
func (s *Store) Add(e Entity) Handle {
	var idx int32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		idx = int32(len(s.slots) - 1)
	}
	sl := &s.slots[idx]
	sl.entity = e
	sl.staged = true
	sl.live = false
	sl.doomed = false
	s.dirty = append(s.dirty, idx)
	s.counts[e.Kind()]++
	return Handle{index: idx, gen: sl.gen}
}

// Remove schedules the entity for removal. Redundant removes of the same
// handle are ignored, making destruction idempotent per entity. The slot
// is freed and its generation bumped at the next Flush.
func (s *Store) Remove(h Handle) {
	sl := s.at(h)
	if sl == nil || sl.doomed {
		return
	}
	sl.doomed = true
	s.dirty = append(s.dirty, h.index)
	s.counts[sl.entity.Kind()]--
}

// at resolves a handle to its slot, or nil when the handle is stale,
// out of range, or points at a freed slot.
func (s *Store) at(h Handle) *slot {
	if h.index < 0 || int(h.index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[h.index]
	if sl.gen != h.gen || sl.entity == nil {
		return nil
	}
	return sl
}

// Get resolves a handle, returning false for stale or removed entities.
func (s *Store) Get(h Handle) (Entity, bool) {
	sl := s.at(h)
	if sl == nil || sl.doomed {
		return nil, false
	}
	return sl.entity, true
}

// Count returns the number of entities of the given kind, including
// staged additions and excluding scheduled removals.
func (s *Store) Count(kind Kind) int {
	if kind == KindAny {
		total := 0
		for _, c := range s.counts {
			total += c
		}
		return total
	}
	return s.counts[kind]
}

// ForEach calls fn for every live entity of the given kind (KindAny for
// all). Entities added or removed during the walk are not observed until
// the next Flush. Returning true from fn stops the iteration.
func (s *Store) ForEach(kind Kind, fn func(h Handle, e Entity) bool) {
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live || sl.doomed {
			continue
		}
		if kind != KindAny && sl.entity.Kind() != kind {
			continue
		}
		if fn(Handle{index: int32(i), gen: sl.gen}, sl.entity) {
			return
		}
	}
}

// Flush settles all deferred additions and removals. Must be called once
// per tick, after collision resolution has finished with the pass.
func (s *Store) Flush() {
	for _, idx := range s.dirty {
		sl := &s.slots[idx]
		switch {
		case sl.doomed:
			sl.entity = nil
			sl.live = false
			sl.staged = false
			sl.doomed = false
			sl.gen++
			s.free = append(s.free, idx)
		case sl.staged:
			sl.staged = false
			sl.live = true
		}
	}
	s.dirty = s.dirty[:0]
}
