package storage

import (
	"context"
	"strings"
	"sync"

	"installations_api/internal/models"
)

// MemoryStore keeps everything in process memory. It is used with
// DB_DRIVER=memory and as a test double; query semantics match Store.
type MemoryStore struct {
	mu          sync.RWMutex
	boroughs    []models.Borough
	aquatic     []models.AquaticFacility
	rinks       []models.IceRink
	slides      []models.Slide
	subscribers []models.Subscriber
	nextID      uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) id(current uint) uint {
	if current != 0 {
		if current > m.nextID {
			m.nextID = current
		}
		return current
	}
	m.nextID++
	return m.nextID
}

// AddBorough stores b, assigning an id when b.ID is zero, and returns it.
func (m *MemoryStore) AddBorough(b models.Borough) models.Borough {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.id(b.ID)
	m.boroughs = append(m.boroughs, b)
	return b
}

// SetBoroughDate changes the update stamp of an existing borough.
func (m *MemoryStore) SetBoroughDate(id uint, dateMaj string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.boroughs {
		if m.boroughs[i].ID == id {
			m.boroughs[i].DateMaj = dateMaj
		}
	}
}

func (m *MemoryStore) AddAquatic(a models.AquaticFacility) models.AquaticFacility {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.id(a.ID)
	m.aquatic = append(m.aquatic, a)
	return a
}

func (m *MemoryStore) AddIceRink(r models.IceRink) models.IceRink {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.id(r.ID)
	m.rinks = append(m.rinks, r)
	return r
}

func (m *MemoryStore) AddSlide(s models.Slide) models.Slide {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.id(s.ID)
	m.slides = append(m.slides, s)
	return s
}

// Subscribers returns a copy of every stored subscriber.
func (m *MemoryStore) Subscribers() []models.Subscriber {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Subscriber(nil), m.subscribers...)
}

func (m *MemoryStore) borough(id uint) (models.Borough, bool) {
	for _, b := range m.boroughs {
		if b.ID == id {
			return b, true
		}
	}
	return models.Borough{}, false
}

// match reports whether a facility passes f. dateHeure is nil for kinds
// without their own timestamp.
func (m *MemoryStore) match(f Filter, boroughID uint, name string, dateHeure *string) bool {
	if f.Name != nil && name != *f.Name {
		return false
	}
	if f.joinsBorough() {
		b, ok := m.borough(boroughID)
		if !ok {
			return false
		}
		if f.BoroughName != nil && b.Name != *f.BoroughName {
			return false
		}
		if f.BoroughUpdatedPrefix != nil && !strings.HasPrefix(b.DateMaj, *f.BoroughUpdatedPrefix) {
			return false
		}
	}
	if dateHeure != nil && f.DateHeureContains != nil && !strings.Contains(*dateHeure, *f.DateHeureContains) {
		return false
	}
	return true
}

func (m *MemoryStore) AquaticFacilities(_ context.Context, f Filter) ([]models.AquaticFacility, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.AquaticFacility{}
	for _, a := range m.aquatic {
		if m.match(f, a.BoroughID, a.Name, nil) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryStore) IceRinks(_ context.Context, f Filter) ([]models.IceRink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.IceRink{}
	for _, r := range m.rinks {
		if m.match(f, r.BoroughID, r.Name, &r.DateHeure) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) Slides(_ context.Context, f Filter) ([]models.Slide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Slide{}
	for _, s := range m.slides {
		if m.match(f, s.BoroughID, s.Name, nil) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStore) Boroughs(_ context.Context) ([]models.Borough, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Borough{}, m.boroughs...), nil
}

func (m *MemoryStore) BoroughsByIDs(_ context.Context, ids []uint) ([]models.Borough, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Borough{}
	for _, b := range m.boroughs {
		for _, id := range ids {
			if b.ID == id {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateSubscriber(_ context.Context, s *models.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.id(0)
	stored := *s
	stored.Boroughs = append([]models.Borough(nil), s.Boroughs...)
	m.subscribers = append(m.subscribers, stored)
	return nil
}

func (m *MemoryStore) CountFollowers(_ context.Context, boroughID uint) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, s := range m.subscribers {
		for _, b := range s.Boroughs {
			if b.ID == boroughID {
				n++
				break
			}
		}
	}
	return n, nil
}

func (m *MemoryStore) Ping(context.Context) error {
	return nil
}
