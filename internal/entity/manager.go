package entity

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Faultbox/gameplay-utils/pkg/gameplay"
	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// Manager owns the entities in a scene. Iteration follows insertion order,
// which makes nearest-entity ties deterministic.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	entities map[uint32]*Entity
	order    []*Entity
	nextID   uint32
}

// NewManager creates a new entity manager.
func NewManager() *Manager {
	return &Manager{
		entities: make(map[uint32]*Entity),
		nextID:   1,
	}
}

// NextID reserves a fresh entity ID.
func (m *Manager) NextID() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		id := m.nextID
		m.nextID++
		if _, taken := m.entities[id]; !taken {
			return id
		}
	}
}

// Add adds an entity. An entity with the same ID is replaced in place.
func (m *Manager) Add(e *Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.entities[e.ID]; ok {
		i := slices.Index(m.order, old)
		m.order[i] = e
	} else {
		m.order = append(m.order, e)
	}
	m.entities[e.ID] = e
}

// Remove removes an entity.
func (m *Manager) Remove(id uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entities[id]
	if !ok {
		return
	}
	delete(m.entities, id)
	m.order = slices.DeleteFunc(m.order, func(o *Entity) bool { return o == e })
}

// Get returns an entity by ID.
func (m *Manager) Get(id uint32) *Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entities[id]
}

// FindByName returns the first entity with the given name.
func (m *Manager) FindByName(name string) *Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.order {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// All returns all entities in insertion order.
func (m *Manager) All() []*Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.order)
}

// ByKind returns all entities of a specific kind.
func (m *Manager) ByKind(kind Kind) []*Entity {
	return m.filter(func(e *Entity) bool { return e.Kind == kind })
}

// ByTag returns all entities carrying tag.
func (m *Manager) ByTag(tag string) []*Entity {
	return m.filter(func(e *Entity) bool { return e.HasTag(tag) })
}

func (m *Manager) filter(keep func(*Entity) bool) []*Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*Entity, 0)
	for _, e := range m.order {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the total number of entities.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Clear removes all entities.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities = make(map[uint32]*Entity)
	m.order = nil
}

// Closest returns the entity nearest to source, ignoring any in exclude.
func (m *Manager) Closest(source math.Vec3, exclude ...*Entity) (*Entity, float32, bool) {
	return closestExcept(source, m.All(), exclude)
}

// ClosestByTag returns the entity carrying tag nearest to source, ignoring
// any in exclude.
func (m *Manager) ClosestByTag(source math.Vec3, tag string, exclude ...*Entity) (*Entity, float32, bool) {
	return closestExcept(source, m.ByTag(tag), exclude)
}

// closestExcept owns candidates and may overwrite its entries.
func closestExcept(source math.Vec3, candidates, exclude []*Entity) (*Entity, float32, bool) {
	for i, e := range candidates {
		if slices.Contains(exclude, e) {
			// nil entries are skipped by the finder
			candidates[i] = nil
		}
	}
	return gameplay.FindClosest(source, candidates)
}

// RotateToward advances the rotation of entity id one frame toward target
// and returns the new rotation.
func (m *Manager) RotateToward(id uint32, target math.Rotator, deltaTime, speed float32) (math.Rotator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entities[id]
	if !ok {
		return math.Rotator{}, fmt.Errorf("entity %d not found", id)
	}
	e.Rotation = gameplay.SmoothRotatorInterp(e.Rotation, target, deltaTime, speed)
	return e.Rotation, nil
}
