package repositories

import (
	"context"
	"testing"

	"valfantasy/api/filters"
	"valfantasy/api/repositories/testutil"
	"valfantasy/pkg/database/models"

	"github.com/stretchr/testify/assert"
)

func TestPlayerRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container test")
	}

	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repo := NewPlayerRepository(db)
	ctx := context.Background()

	seed := []*models.Player{
		{Name: "aspas", MMR: 480, IsActive: true},
		{Name: "less", MMR: 410, IsActive: true},
		{Name: "lesley", MMR: 250, IsActive: true},
		{Name: "retired", MMR: 500, IsActive: false},
	}
	assert.NoError(t, db.Create(&seed).Error)

	t.Run("listActiveOrdersByMMR", func(t *testing.T) {
		players, err := repo.ListActive(ctx, &filters.PlayerListFilter{})

		assert.NoError(t, err)
		assert.Len(t, players, 3)
		assert.Equal(t, "aspas", players[0].Name)
		assert.Equal(t, "lesley", players[2].Name)
	})

	t.Run("nilFilterIsAnError", func(t *testing.T) {
		players, err := repo.ListActive(ctx, nil)

		assert.Nil(t, players)
		assert.Error(t, err)
	})

	t.Run("namePrefixFilterIsCaseInsensitive", func(t *testing.T) {
		players, err := repo.ListActive(ctx, &filters.PlayerListFilter{Name: "LES"})

		assert.NoError(t, err)
		assert.Len(t, players, 2)
		assert.Equal(t, "less", players[0].Name)
		assert.Equal(t, "lesley", players[1].Name)
	})

	t.Run("maxMMRFilter", func(t *testing.T) {
		players, err := repo.ListActive(ctx, &filters.PlayerListFilter{MaxMMR: 300})

		assert.NoError(t, err)
		assert.Len(t, players, 1)
		assert.Equal(t, "lesley", players[0].Name)
	})

	t.Run("getByIDsSkipsMissing", func(t *testing.T) {
		byID, err := repo.GetByIDs(ctx, []uint{seed[0].ID, 9999})

		assert.NoError(t, err)
		assert.Len(t, byID, 1)
		assert.Equal(t, "aspas", byID[seed[0].ID].Name)
	})
}
