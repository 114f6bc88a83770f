package storage

import (
	"os"
	"testing"

	"installations_api/internal/config"
	"installations_api/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// connectTestingDatabase opens the TEST_DB_* database, or skips when none is
// configured.
func connectTestingDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set")
	}
	cfg := config.LoadTestDB()
	if cfg.Driver != "postgres" {
		t.Skipf("integration tests run on postgres, got %s", cfg.Driver)
	}
	db, err := Open(cfg)
	require.NoError(t, err)
	return db
}

func gormSeeder(t *testing.T, db *gorm.DB) seeder {
	return seeder{
		borough: func(b models.Borough) models.Borough {
			require.NoError(t, db.Create(&b).Error)
			return b
		},
		aquatic: func(a models.AquaticFacility) models.AquaticFacility {
			require.NoError(t, db.Create(&a).Error)
			return a
		},
		rink: func(r models.IceRink) models.IceRink {
			require.NoError(t, db.Create(&r).Error)
			return r
		},
		slide: func(s models.Slide) models.Slide {
			require.NoError(t, db.Create(&s).Error)
			return s
		},
	}
}

func TestStoreContract(t *testing.T) {
	db := connectTestingDatabase(t)
	store := NewStore(db)
	require.NoError(t, store.Migrate())
	require.NoError(t, db.Exec("TRUNCATE TABLE abonne_arrondissements, abonnes, glissades, patinoires, installations_aquatiques, arrondissements RESTART IDENTITY CASCADE;").Error)

	runBackendContract(t, store, gormSeeder(t, db))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.DBConfig{Driver: "oracle"})
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, `20\_1\%\\`, escapeLike(`20_1%\`))
}
