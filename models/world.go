package models

// World is the arena that owns every entity of a race.
// Entities refer to each other by ID; lane reservations are kept here, keyed by
// entity ID, instead of on the cars themselves.
type World struct {
	nextID       int
	entities     []*Entity
	byID         map[int]*Entity
	pending      []*Entity
	reservations map[int][]int // Oldest reservation first
}

// NewWorld creates an empty arena
func NewWorld() *World {
	return &World{
		nextID:       1,
		entities:     make([]*Entity, 0, 64),
		byID:         make(map[int]*Entity),
		reservations: make(map[int][]int),
	}
}

// Add places an entity in the arena immediately and assigns its ID
func (w *World) Add(e *Entity) *Entity {
	w.assign(e)
	w.entities = append(w.entities, e)
	return e
}

// Spawn queues an entity created mid-frame; it joins the arena at the next Prune
func (w *World) Spawn(e *Entity) *Entity {
	w.assign(e)
	w.pending = append(w.pending, e)
	return e
}

func (w *World) assign(e *Entity) {
	e.ID = w.nextID
	w.nextID++
	w.byID[e.ID] = e
}

// Entities returns the arena contents in insertion order.
// Dead entities stay until Prune.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Live returns the entities that are not dead
func (w *World) Live() []*Entity {
	live := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if !e.Dead {
			live = append(live, e)
		}
	}
	return live
}

// OfKind returns the live entities of one kind
func (w *World) OfKind(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.Kind == kind && !e.Dead {
			out = append(out, e)
		}
	}
	return out
}

// Get returns the entity with the given ID, or nil
func (w *World) Get(id int) *Entity {
	return w.byID[id]
}

// Len returns the number of entities in the arena, pending ones excluded
func (w *World) Len() int {
	return len(w.entities)
}

// Reserve appends a lane to the entity's reservations
func (w *World) Reserve(id, lane int) {
	w.reservations[id] = append(w.reservations[id], lane)
}

// ReleaseOldest drops the entity's oldest reservation
func (w *World) ReleaseOldest(id int) {
	lanes := w.reservations[id]
	if len(lanes) == 0 {
		return
	}
	w.reservations[id] = lanes[1:]
}

// Reservations returns a copy of the lanes reserved by the entity, oldest first
func (w *World) Reservations(id int) []int {
	lanes := w.reservations[id]
	out := make([]int, len(lanes))
	copy(out, lanes)
	return out
}

// HasReserved reports whether the entity holds a reservation on the lane
func (w *World) HasReserved(id, lane int) bool {
	for _, l := range w.reservations[id] {
		if l == lane {
			return true
		}
	}
	return false
}

// Prune removes dead entities and lets spawned ones in.
// It returns how many entities were removed.
func (w *World) Prune() int {
	kept := w.entities[:0]
	removed := 0
	for _, e := range w.entities {
		if e.Dead {
			delete(w.byID, e.ID)
			delete(w.reservations, e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = append(kept, w.pending...)
	w.pending = w.pending[:0]
	return removed
}
