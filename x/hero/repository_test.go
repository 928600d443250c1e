package hero

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/internal/testutil"
)

func TestRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container backed test in short mode")
	}

	ctx := context.Background()

	db, cleanupDB := testutil.CreateDB()
	defer cleanupDB()

	mc, cleanupMC := testutil.CreateMC()
	defer cleanupMC()

	repo := NewRepository(db, mc)

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// seeding with explicit ids moves the serial past them
	for _, hero := range core.ClassicHeroes {
		_, err := repo.Create(ctx, hero)
		assert.NoError(t, err)
	}

	created, err := repo.Create(ctx, core.Hero{Name: "Batman"})
	assert.NoError(t, err)
	assert.Equal(t, uint(21), created.ID)

	count, err = repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), count)

	all, err := repo.List(ctx)
	assert.NoError(t, err)
	if assert.Len(t, all, 11) {
		assert.Equal(t, core.Hero{ID: 11, Name: "Mr. Nice"}, all[0])
	}

	matched, err := repo.Search(ctx, "MAG")
	assert.NoError(t, err)
	assert.Equal(t, []core.Hero{{ID: 15, Name: "Magneta"}, {ID: 19, Name: "Magma"}}, matched)

	// wildcard characters are matched literally
	none, err := repo.Search(ctx, "%")
	assert.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = repo.Update(ctx, core.Hero{ID: 13, Name: "Bombastic"})
	assert.NoError(t, err)

	got, err := repo.Get(ctx, 13)
	assert.NoError(t, err)
	assert.Equal(t, "Bombastic", got.Name)

	var notFound core.ErrorNotFound
	_, err = repo.Get(ctx, 99)
	assert.ErrorAs(t, err, &notFound)

	_, err = repo.Update(ctx, core.Hero{ID: 99, Name: "Ghost"})
	assert.ErrorAs(t, err, &notFound)

	assert.NoError(t, repo.Delete(ctx, 21))
	assert.ErrorAs(t, repo.Delete(ctx, 21), &notFound)

	count, err = repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), count)
}
