package repository

import (
	"context"
	"testing"

	"github.com/jaydeepbariya/master-backend-app/internal/cache"
	"github.com/jaydeepbariya/master-backend-app/internal/database"
	"github.com/jaydeepbariya/master-backend-app/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func setupCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Seed User", Email: email, Password: "irrelevant-hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Name: "First", Email: "dup@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.User{Name: "Second", Email: "dup@example.com", Password: "hash"}
	err := repo.Create(ctx, second)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserGetByEmailAbsent(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserUpdateProfileNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	err := repo.UpdateProfile(context.Background(), 999, "https://images.example.com/x.png")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestNewsGetByIDPopulatesCache(t *testing.T) {
	db := setupDB(t)
	mr := setupCache(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	news := &models.News{
		Title:   "Cached article",
		Content: "content long enough to matter",
		Image:   "https://images.example.com/a.png",
		UserID:  owner.ID,
	}
	require.NoError(t, repo.Create(ctx, news))

	got, err := repo.GetByID(ctx, news.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cached article", got.Title)
	assert.Equal(t, owner.Name, got.User.Name)
	assert.True(t, mr.Exists(cache.NewsKey(news.ID)), "miss must write through to the cache")

	// Remove the row behind the cache's back; the cached copy still serves.
	require.NoError(t, db.Unscoped().Delete(&models.News{}, news.ID).Error)

	got, err = repo.GetByID(ctx, news.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cached article", got.Title)
}

func TestNewsUpdateInvalidatesCache(t *testing.T) {
	db := setupDB(t)
	mr := setupCache(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	news := &models.News{
		Title:   "Original title",
		Content: "content long enough to matter",
		Image:   "https://images.example.com/a.png",
		UserID:  owner.ID,
	}
	require.NoError(t, repo.Create(ctx, news))

	_, err := repo.GetByID(ctx, news.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.NewsKey(news.ID)))

	news.Title = "Updated title"
	require.NoError(t, repo.Update(ctx, news))
	assert.False(t, mr.Exists(cache.NewsKey(news.ID)), "update must drop the stale entry")

	got, err := repo.GetByID(ctx, news.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
}

func TestNewsDeleteInvalidatesCache(t *testing.T) {
	db := setupDB(t)
	mr := setupCache(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	news := &models.News{
		Title:   "Doomed article",
		Content: "content long enough to matter",
		Image:   "https://images.example.com/a.png",
		UserID:  owner.ID,
	}
	require.NoError(t, repo.Create(ctx, news))

	_, err := repo.GetByID(ctx, news.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, news.ID))
	assert.False(t, mr.Exists(cache.NewsKey(news.ID)))

	_, err = repo.GetByID(ctx, news.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestNewsGetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewNewsRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestNewsListOrderAndWindow(t *testing.T) {
	db := setupDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &models.News{
			Title:   "Numbered article",
			Content: "content long enough to matter",
			Image:   "https://images.example.com/a.png",
			UserID:  owner.ID,
		}))
	}

	page, err := repo.List(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Less(t, page[0].ID, page[1].ID, "listing is ordered by id ascending")

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
}
