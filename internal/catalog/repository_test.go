package catalog

import (
	"path/filepath"
	"testing"

	"soupshoppe/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}, &models.GeneratedImage{}).Error)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveItemCreatesAndUpdates(t *testing.T) {
	repo := NewRepository(testDB(t))

	created, err := repo.SaveItem(&models.MenuItem{
		ID:       "c1",
		Name:     "Harvest Panini",
		Type:     "panini",
		IsCustom: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID)

	created.Name = "Harvest Panini v2"
	_, err = repo.SaveItem(created)
	require.NoError(t, err)

	items := repo.CustomItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Harvest Panini v2", items[0].Name)
}

func TestGetItemUnknownIDIsNil(t *testing.T) {
	repo := NewRepository(testDB(t))

	item, err := repo.GetItem("nope")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestSaveGeneratedImageUpserts(t *testing.T) {
	repo := NewRepository(testDB(t))

	_, err := repo.SaveGeneratedImage("s6", "https://cdn.example.com/v1.png", nil)
	require.NoError(t, err)
	_, err = repo.SaveGeneratedImage("s6", "https://cdn.example.com/v2.png", nil)
	require.NoError(t, err)

	images := repo.GeneratedImages()
	require.Len(t, images, 1)
	assert.Equal(t, "https://cdn.example.com/v2.png", images[0].ImageURL)
}

func TestSaveGeneratedImageBackfillsExistingItem(t *testing.T) {
	repo := NewRepository(testDB(t))
	_, err := repo.SaveItem(&models.MenuItem{ID: "c1", Name: "Special", Type: "entree", IsCustom: true})
	require.NoError(t, err)

	_, err = repo.SaveGeneratedImage("c1", "https://cdn.example.com/c1.png", nil)
	require.NoError(t, err)

	item, err := repo.GetItem("c1")
	require.NoError(t, err)
	require.NotNil(t, item)
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, "https://cdn.example.com/c1.png", *item.ImageURL)
	assert.True(t, item.IsCustom)
}

func TestSaveGeneratedImageCreatesItemFromItemData(t *testing.T) {
	repo := NewRepository(testDB(t))

	_, err := repo.SaveGeneratedImage("s6", "https://cdn.example.com/s6.png", &models.MenuItem{
		Name: "Black Angus Beef Chilli",
		Type: "soup",
	})
	require.NoError(t, err)

	item, err := repo.GetItem("s6")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Black Angus Beef Chilli", item.Name)
	assert.False(t, item.IsCustom)
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, "https://cdn.example.com/s6.png", *item.ImageURL)
}

func TestServiceResolveMergedCatalog(t *testing.T) {
	repo := NewRepository(testDB(t))
	svc := NewService(repo)

	// Seed item resolves without any stored rows.
	item := svc.Resolve("s6")
	require.NotNil(t, item)
	assert.True(t, svc.IsBuiltin("s6"))

	// A stored generated image shows up on the resolved seed item.
	_, err := repo.SaveGeneratedImage("s6", "https://cdn.example.com/s6.png", nil)
	require.NoError(t, err)
	item = svc.Resolve("s6")
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, "https://cdn.example.com/s6.png", *item.ImageURL)

	assert.Nil(t, svc.Resolve("dangling"))
	assert.False(t, svc.IsBuiltin("dangling"))
}
