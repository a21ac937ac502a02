package repository

import (
	"context"
	"testing"
	"time"

	"copygen/internal/errs"
	"copygen/internal/models"
	"copygen/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newGeneration(userID uint, name string, createdAt time.Time) *models.Generation {
	return &models.Generation{
		UserID:               userID,
		ProductName:          name,
		ToneOfVoice:          "playful",
		GeneratedDescription: name + " description",
		GeneratedAdCopy:      datatypes.JSONSlice[string]{"ad one", "ad two", "ad three"},
		GeneratedEmailBlurb:  name + " email",
		CreatedAt:            createdAt,
	}
}

func TestGenerationRepositoryHistoryOrderAndScope(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGenerationRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newGeneration(alice.ID, name, base.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, repo.Create(ctx, newGeneration(bob.ID, "bobs", base)))

	list, total, err := repo.ListByUserID(ctx, alice.ID, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].ProductName)
	assert.Equal(t, "first", list[2].ProductName)
	assert.Equal(t, []string{"ad one", "ad two", "ad three"}, []string(list[0].GeneratedAdCopy))

	page, total, err := repo.ListByUserID(ctx, alice.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].ProductName)
}

func TestGenerationRepositoryOwnerScoping(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGenerationRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	gen := newGeneration(alice.ID, "lamp", time.Now())
	require.NoError(t, repo.Create(ctx, gen))

	_, err := repo.GetByIDAndUserID(ctx, gen.ID, bob.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	favorite := true
	_, err = repo.Update(ctx, gen.ID, bob.ID, models.GenerationPatch{IsFavorite: &favorite})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, gen.ID, bob.ID), errs.ErrNotFound)

	// 其他用户的操作不影响记录
	got, err := repo.GetByIDAndUserID(ctx, gen.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)
}

func TestGenerationRepositoryPartialUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGenerationRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	alice := testutil.CreateUser(t, db, "alice")
	gen := newGeneration(alice.ID, "lamp", created)
	gen.UpdatedAt = created
	require.NoError(t, repo.Create(ctx, gen))

	favoritedAt := created.Add(time.Hour)
	repo.now = func() time.Time { return favoritedAt }

	favorite := true
	updated, err := repo.Update(ctx, gen.ID, alice.ID, models.GenerationPatch{IsFavorite: &favorite})
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, "lamp description", updated.GeneratedDescription)
	assert.Equal(t, "lamp email", updated.GeneratedEmailBlurb)
	assert.Equal(t, []string{"ad one", "ad two", "ad three"}, []string(updated.GeneratedAdCopy))
	assert.True(t, updated.UpdatedAt.Equal(favoritedAt), updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.True(t, updated.CreatedAt.Equal(created))

	editedAt := favoritedAt.Add(time.Hour)
	repo.now = func() time.Time { return editedAt }

	adCopy := []string{"new one", "new two", "new three"}
	updated, err = repo.Update(ctx, gen.ID, alice.ID, models.GenerationPatch{GeneratedAdCopy: &adCopy})
	require.NoError(t, err)
	assert.Equal(t, adCopy, []string(updated.GeneratedAdCopy))
	assert.True(t, updated.IsFavorite)
	assert.True(t, updated.UpdatedAt.Equal(editedAt), updated.UpdatedAt)

	// 空更新也刷新 updated_at
	touchedAt := editedAt.Add(time.Minute)
	repo.now = func() time.Time { return touchedAt }

	updated, err = repo.Update(ctx, gen.ID, alice.ID, models.GenerationPatch{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.Equal(touchedAt), updated.UpdatedAt)
	assert.Equal(t, adCopy, []string(updated.GeneratedAdCopy))
}

func TestGenerationRepositoryDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGenerationRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	gen := newGeneration(alice.ID, "lamp", time.Now())
	require.NoError(t, repo.Create(ctx, gen))

	require.NoError(t, repo.Delete(ctx, gen.ID, alice.ID))
	assert.ErrorIs(t, repo.Delete(ctx, gen.ID, alice.ID), errs.ErrNotFound)

	_, total, err := repo.ListByUserID(ctx, alice.ID, 0, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
}
