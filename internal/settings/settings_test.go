package settings

import (
	"path/filepath"
	"testing"

	"soupshoppe/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SiteSetting{}).Error)
	t.Cleanup(func() { db.Close() })
	return NewService(db), db
}

func TestAnnouncementDefaults(t *testing.T) {
	svc, _ := testService(t)

	got := svc.Announcement()
	assert.False(t, got.Enabled)
	assert.Equal(t, "rgba(0, 0, 0, 0.85)", got.BackgroundColor)
	assert.Equal(t, "#ffffff", got.TextColor)
}

func TestAnnouncementRoundTrip(t *testing.T) {
	svc, _ := testService(t)

	in := models.AnnouncementSettings{
		Enabled:         true,
		Title:           "Holiday Hours",
		Message:         "Closing at 2pm on Friday",
		BackgroundColor: "#222222",
		TextColor:       "#eeeeee",
	}
	require.NoError(t, svc.SaveAnnouncement(in))
	assert.Equal(t, in, svc.Announcement())

	// Saving again replaces, not duplicates.
	in.Message = "Back to normal hours"
	require.NoError(t, svc.SaveAnnouncement(in))
	assert.Equal(t, "Back to normal hours", svc.Announcement().Message)
}

func TestAnnouncementCorruptRowDegradesToDefaults(t *testing.T) {
	svc, db := testService(t)

	require.NoError(t, db.Create(&models.SiteSetting{
		Key:   "announcement",
		Value: models.JSONValue([]byte("{not json")),
	}).Error)

	got := svc.Announcement()
	assert.False(t, got.Enabled)
	assert.Equal(t, "#ffffff", got.TextColor)
}
