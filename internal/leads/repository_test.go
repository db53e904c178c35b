package leads

import (
	"path/filepath"
	"testing"

	"soupshoppe/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "leads.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuSuggestion{}, &models.DeliveryEnrollment{}).Error)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestCreateSuggestionAssignsIDAndStatus(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.CreateSuggestion(&models.MenuSuggestion{
		GuestName: "Pat",
		ItemName:  "Clam Chowder",
		ItemType:  "soup",
		Status:    "implemented", // client-sent status is ignored
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.SuggestionStatusNew, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateSuggestionStatus(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.CreateSuggestion(&models.MenuSuggestion{
		GuestName: "Pat", ItemName: "Clam Chowder", ItemType: "soup",
	})
	require.NoError(t, err)

	updated, err := repo.UpdateSuggestionStatus(created.ID, models.SuggestionStatusReviewed)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.SuggestionStatusReviewed, updated.Status)

	missing, err := repo.UpdateSuggestionStatus("nope", models.SuggestionStatusReviewed)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEnrollmentRoundTrip(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.CreateEnrollment(&models.DeliveryEnrollment{
		GuestName:      "Pat",
		PhoneNumber:    "555-0100",
		OptInConfirmed: true,
	})
	require.NoError(t, err)

	out := repo.AllEnrollments()
	require.Len(t, out, 1)
	assert.Equal(t, "555-0100", out[0].PhoneNumber)
	assert.True(t, out[0].OptInConfirmed)
}
