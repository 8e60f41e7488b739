package configs

import (
	"testing"
	"time"

	"github.com/EswarAdityaReddy/Foodie/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("SESSION_CAPACITY", "32")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 32, cfg.SessionCapacity)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_TTL", "1h")
	t.Setenv("SESSION_CAPACITY", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(&Config{LogLevel: "debug", GinMode: "debug"})
	assert.NoError(t, err)

	_, err = NewLogger(&Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestConnectionDB_UnknownDriver(t *testing.T) {
	_, err := ConnectionDB(&Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	db, err := ConnectionDB(&Config{DBDriver: "sqlite", DBSource: "file:seed_idempotent?mode=memory&cache=shared"})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))
	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	var n int64
	require.NoError(t, db.Model(&entity.Restaurant{}).Count(&n).Error)
	assert.Equal(t, int64(len(Restaurants)), n)
	require.NoError(t, db.Model(&entity.MenuItem{}).Count(&n).Error)
	assert.Equal(t, int64(len(MenuItems)), n)
}

func TestSeedCatalog_MenuItemsReferenceRestaurants(t *testing.T) {
	known := map[string]bool{}
	for _, r := range Restaurants {
		known[r.ID] = true
	}
	for _, m := range MenuItems {
		assert.True(t, known[m.RestaurantID], "menu item %s has unknown restaurant %s", m.ID, m.RestaurantID)
	}
}
