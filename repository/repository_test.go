package repository

import (
	"testing"

	"github.com/EswarAdityaReddy/Foodie/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.ConnectionDB(&configs.Config{
		DBDriver: "sqlite",
		DBSource: "file:" + t.Name() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedCatalog(db))
	return db
}

func TestRestaurantRepository(t *testing.T) {
	repo := NewRestaurantRepository(seededDB(t))

	rests, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, rests, len(configs.Restaurants))
	for i, r := range rests {
		assert.Equal(t, configs.Restaurants[i].ID, r.ID)
	}
	assert.Equal(t, []string{"Pizza", "Italian", "Fast Food"}, rests[0].Cuisines)
	require.NotNil(t, rests[0].Promotion)

	assert.Equal(t, "La Trattoria", rests[4].Name)

	cats, err := repo.FindCategories()
	require.NoError(t, err)
	require.Len(t, cats, len(configs.Categories))
	assert.Equal(t, "c1", cats[0].ID)
}

func TestMenuRepository(t *testing.T) {
	repo := NewMenuRepository(seededDB(t))

	items, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, items, len(configs.MenuItems))
	assert.Equal(t, "m1", items[0].ID)

	it := items[14]
	assert.Equal(t, "m15", it.ID)
	assert.Equal(t, "r5", it.RestaurantID)
	assert.Equal(t, "429", it.Price.String())
}

func TestOrderRepository_ListHistory(t *testing.T) {
	repo := NewOrderRepository(seededDB(t))

	all, err := repo.ListHistory(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ord-001", all[0].ID)
	assert.Equal(t, "ord-003", all[2].ID)
	assert.Equal(t, "Spice Paradise", all[0].RestaurantName)
	assert.Equal(t, []string{"Butter Chicken", "Naan", "Biryani"}, all[0].Items)

	two, err := repo.ListHistory(2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}
