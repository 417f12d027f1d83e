package repositories_test

import (
	"context"
	"testing"

	"botica/internal/models"
	"botica/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The in-memory repository must honour the same contract as the GORM one.
func TestMockRepositoryContract(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	ctx := context.Background()

	// Sequential ids on create.
	first := &models.Product{Name: "Uno", Description: "d", Price: 1, Stock: 1}
	second := &models.Product{Name: "Dos", Description: "d", Price: 2, Stock: 2}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// Round trip.
	fetched, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, fetched)

	// Full replacement keeps the id.
	replacement := &models.Product{ID: first.ID, Name: "Uno v2", Description: "d2", Price: 3, Stock: 4}
	require.NoError(t, repo.Update(ctx, replacement))
	fetched, err = repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, fetched)

	// Insertion-order pagination.
	page, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	// Delete removes visibility; absent ids report not found.
	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999999), repositories.ErrProductNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.Product{ID: 999999}), repositories.ErrProductNotFound)
}
