package hero

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/totegamma/tourofheroes/core"
)

// MemoryRepository keeps heroes in process memory. it stands in for the
// database when no dsn is configured
type MemoryRepository struct {
	mu     sync.RWMutex
	heroes map[uint]core.Hero
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		heroes: make(map[uint]core.Hero),
	}
}

func (m *MemoryRepository) sorted() []core.Hero {
	heroes := make([]core.Hero, 0, len(m.heroes))
	for _, hero := range m.heroes {
		heroes = append(heroes, hero)
	}
	sort.Slice(heroes, func(i, j int) bool {
		return heroes[i].ID < heroes[j].ID
	})
	return heroes
}

// genID returns max(id)+1, or 11 for an empty store
func (m *MemoryRepository) genID() uint {
	var max uint = 10
	for id := range m.heroes {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (m *MemoryRepository) Get(ctx context.Context, id uint) (core.Hero, error) {
	_, span := tracer.Start(ctx, "Hero.MemoryRepository.Get")
	defer span.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	hero, ok := m.heroes[id]
	if !ok {
		return core.Hero{}, core.NewErrorNotFound()
	}
	return hero, nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]core.Hero, error) {
	_, span := tracer.Start(ctx, "Hero.MemoryRepository.List")
	defer span.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sorted(), nil
}

func (m *MemoryRepository) Search(ctx context.Context, term string) ([]core.Hero, error) {
	_, span := tracer.Start(ctx, "Hero.MemoryRepository.Search")
	defer span.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(term)
	result := []core.Hero{}
	for _, hero := range m.sorted() {
		if strings.Contains(strings.ToLower(hero.Name), needle) {
			result = append(result, hero)
		}
	}
	return result, nil
}

func (m *MemoryRepository) Create(ctx context.Context, hero core.Hero) (core.Hero, error) {
	_, span := tracer.Start(ctx, "Hero.MemoryRepository.Create")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if hero.ID == 0 {
		hero.ID = m.genID()
	}
	m.heroes[hero.ID] = hero
	return hero, nil
}

func (m *MemoryRepository) Update(ctx context.Context, hero core.Hero) (core.Hero, error) {
	_, span := tracer.Start(ctx, "Hero.MemoryRepository.Update")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.heroes[hero.ID]; !ok {
		return hero, core.NewErrorNotFound()
	}
	m.heroes[hero.ID] = hero
	return hero, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "Hero.MemoryRepository.Delete")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.heroes[id]; !ok {
		return core.NewErrorNotFound()
	}
	delete(m.heroes, id)
	return nil
}

func (m *MemoryRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.heroes)), nil
}
