package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/electrostore/backend/internal/domain/comparison"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newComparisonTestDB opens an in-memory SQLite database with the records table
func newComparisonTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&comparison.Record{}))
	return db
}

func saveRecord(t *testing.T, repo *GormComparisonRepository, userID uuid.UUID, comparedAt time.Time) *comparison.Record {
	record, err := comparison.NewRecord(userID, uuid.New(), uuid.New())
	require.NoError(t, err)
	record.ComparedAt = comparedAt
	require.NoError(t, repo.Save(context.Background(), record))
	return record
}

func TestGormComparisonRepository_SaveAndFindByUser(t *testing.T) {
	repo := NewGormComparisonRepository(newComparisonTestDB(t))
	userID := uuid.New()

	base := time.Now().Add(-time.Hour)
	oldest := saveRecord(t, repo, userID, base)
	middle := saveRecord(t, repo, userID, base.Add(10*time.Minute))
	newest := saveRecord(t, repo, userID, base.Add(20*time.Minute))

	records, err := repo.FindByUser(context.Background(), userID, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, newest.ID, records[0].ID)
	assert.Equal(t, middle.ID, records[1].ID)
	assert.Equal(t, oldest.ID, records[2].ID)
}

func TestGormComparisonRepository_FindByUserScopedToCaller(t *testing.T) {
	repo := NewGormComparisonRepository(newComparisonTestDB(t))
	alice := uuid.New()
	bob := uuid.New()

	saveRecord(t, repo, alice, time.Now())
	saveRecord(t, repo, bob, time.Now())

	records, err := repo.FindByUser(context.Background(), alice, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, alice, records[0].UserID)
}

func TestGormComparisonRepository_FindByUserRespectsLimit(t *testing.T) {
	repo := NewGormComparisonRepository(newComparisonTestDB(t))
	userID := uuid.New()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		saveRecord(t, repo, userID, base.Add(time.Duration(i)*time.Minute))
	}

	records, err := repo.FindByUser(context.Background(), userID, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestGormComparisonRepository_FindByUserEmptyHistory(t *testing.T) {
	repo := NewGormComparisonRepository(newComparisonTestDB(t))

	records, err := repo.FindByUser(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
