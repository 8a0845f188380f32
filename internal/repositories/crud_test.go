package repositories_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Speaker{}, &models.Registration{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestCrudRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewSpeakerRepository()

	speaker := &models.Speaker{Name: "Aigerim", Title: "CEO"}
	require.NoError(t, repo.Create(db, speaker))
	require.NotEmpty(t, speaker.ID)

	found, err := repo.FindByID(db, speaker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aigerim", found.Name)
}

func TestCrudRepository_FindMissing(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewSpeakerRepository()

	_, err := repo.FindByID(db, "does-not-exist")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestCrudRepository_UpdateMissing(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewSpeakerRepository()

	err := repo.Update(db, "does-not-exist", map[string]interface{}{"title": "CTO"})
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestCrudRepository_UpdateNoopSucceeds(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewSpeakerRepository()

	speaker := &models.Speaker{Name: "Aigerim", Title: "CEO"}
	require.NoError(t, repo.Create(db, speaker))

	// Writing the value the row already has must not be reported as missing.
	require.NoError(t, repo.Update(db, speaker.ID, map[string]interface{}{"title": "CEO"}))
}

func TestCrudRepository_DeleteMissing(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewSpeakerRepository()

	err := repo.Delete(db, "does-not-exist")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestRegistrationRepository_Pagination(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewRegistrationRepository()

	for i := 0; i < 5; i++ {
		reg := &models.Registration{
			FullName:        fmt.Sprintf("User %d", i),
			Email:           fmt.Sprintf("user%d@example.com", i),
			Phone:           "123",
			JobTitle:        "Director",
			ParticipantType: "delegate",
			TicketType:      "free",
			Status:          "completed",
		}
		require.NoError(t, repo.Create(db, reg))
	}

	page1, total, err := repo.FindAll(db, "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, total, err := repo.FindAll(db, "", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page3, 1)
}

func TestRegistrationRepository_StatusFilter(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewRegistrationRepository()

	for _, status := range []string{"completed", "completed", "cancelled"} {
		reg := &models.Registration{
			FullName: "U", Email: "u@example.com", Phone: "1",
			JobTitle: "D", ParticipantType: "delegate",
			TicketType: "free", Status: status,
		}
		require.NoError(t, repo.Create(db, reg))
	}

	completed, total, err := repo.FindAll(db, "completed", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, completed, 2)

	// "all" is the filter-off sentinel the admin table sends.
	everything, total, err := repo.FindAll(db, "all", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, everything, 3)
}

func TestRegistrationRepository_ExportIsFullTableOldestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewRegistrationRepository()

	for i := 0; i < 3; i++ {
		reg := &models.Registration{
			FullName: fmt.Sprintf("User %d", i), Email: "e@example.com", Phone: "1",
			JobTitle: "D", ParticipantType: "delegate",
			TicketType: "free", Status: "completed",
		}
		require.NoError(t, repo.Create(db, reg))
	}

	records, err := repo.FindAllForExport(db)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "User 0", records[0].FullName)
}
