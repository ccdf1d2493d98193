package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
)

func TestDefaultStoreMappings(t *testing.T) {
	mappings := DefaultStoreMappings()
	assert.Len(t, mappings, 55)

	// Scan order matters; the table starts with restaurant chains.
	assert.Equal(t, "mcdonalds", mappings[0].Match)
	assert.Equal(t, models.CategoryFoodDining, mappings[0].Overall)

	for _, mapping := range mappings {
		assert.NotEmpty(t, mapping.Match)
		assert.True(t, mapping.Overall.IsValid(), "overall category for %q", mapping.Match)
		if mapping.ItemDefault != "" {
			assert.True(t, mapping.ItemDefault.IsValid(), "item default for %q", mapping.Match)
		}
	}
}

func TestDefaultStoreMappingsReturnsCopy(t *testing.T) {
	first := DefaultStoreMappings()
	first[0].Match = "mutated"
	second := DefaultStoreMappings()
	assert.Equal(t, "mcdonalds", second[0].Match)
}

func TestLoadStoreMappingsNoFile(t *testing.T) {
	s := NewCategoryStore("", &logging.MockLogger{})
	mappings, err := s.LoadStoreMappings()
	require.NoError(t, err)
	assert.Equal(t, DefaultStoreMappings(), mappings)
}

func TestLoadStoreMappingsMissingFileFallsBack(t *testing.T) {
	s := NewCategoryStore("does-not-exist.yaml", &logging.MockLogger{})
	mappings, err := s.LoadStoreMappings()
	require.NoError(t, err)
	assert.Equal(t, DefaultStoreMappings(), mappings)
}

func TestLoadStoreMappingsFromYAML(t *testing.T) {
	dir := t.TempDir()
	storesFile := filepath.Join(dir, "stores.yaml")
	content := `stores:
  - match: "corner shop"
    category: "Grocery/Supermarket"
  - match: "city cinema"
    category: "Entertainment"
    item_default: "Entertainment"
  - match: ""
    category: "Grocery/Supermarket"
  - match: "mystery"
    category: "Not A Category"
  - match: "half valid"
    category: "Household"
    item_default: "Not A Category"
`
	require.NoError(t, os.WriteFile(storesFile, []byte(content), 0600))

	s := NewCategoryStore(storesFile, &logging.MockLogger{})
	mappings, err := s.LoadStoreMappings()
	require.NoError(t, err)

	require.Len(t, mappings, 3)
	assert.Equal(t, models.StoreMapping{Match: "corner shop", Overall: models.CategoryGrocery}, mappings[0])
	assert.Equal(t, models.CategoryEntertainment, mappings[1].ItemDefault)
	assert.Equal(t, models.StoreMapping{Match: "half valid", Overall: models.CategoryHousehold}, mappings[2])
}

func TestLoadStoreMappingsBadYAML(t *testing.T) {
	dir := t.TempDir()
	storesFile := filepath.Join(dir, "stores.yaml")
	require.NoError(t, os.WriteFile(storesFile, []byte("stores: [unclosed"), 0600))

	s := NewCategoryStore(storesFile, &logging.MockLogger{})
	_, err := s.LoadStoreMappings()
	assert.Error(t, err)
}

func TestFindConfigFileAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stores: []"), 0600))

	s := NewCategoryStore("", &logging.MockLogger{})
	found, err := s.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = s.FindConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
