package storage

import (
	"context"
	"testing"

	"installations_api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunStore builds SQL against the postgres dialect without a server.
func dryRunStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return NewStore(db)
}

func TestScopeBoroughName(t *testing.T) {
	stmt := dryRunStore(t).scope(context.Background(), Filter{BoroughName: Str("Verdun")}, false).
		Find(&[]models.AquaticFacility{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, `INNER JOIN "arrondissements" "Borough"`)
	assert.Contains(t, sql, `"Borough"."nom" = $1`)
	assert.Regexp(t, `ORDER BY .*"id"`, sql)
	assert.Equal(t, []interface{}{"Verdun"}, stmt.Vars)
}

func TestScopeUpdatedPrefixEscapesWildcards(t *testing.T) {
	stmt := dryRunStore(t).scope(context.Background(), Filter{BoroughUpdatedPrefix: Str("20_1")}, false).
		Find(&[]models.Slide{}).Statement

	assert.Contains(t, stmt.SQL.String(), `"Borough"."date_maj" LIKE $1`)
	assert.Equal(t, []interface{}{`20\_1%`}, stmt.Vars)
}

func TestScopeRinkDateContains(t *testing.T) {
	stmt := dryRunStore(t).scope(context.Background(), Filter{DateHeureContains: Str("2021")}, true).
		Find(&[]models.IceRink{}).Statement

	sql := stmt.SQL.String()
	assert.NotContains(t, sql, "JOIN")
	assert.Contains(t, sql, `"patinoires"."date_heure" LIKE $1`)
	assert.Equal(t, []interface{}{"%2021%"}, stmt.Vars)
}

func TestScopeNameOnly(t *testing.T) {
	stmt := dryRunStore(t).scope(context.Background(), Filter{Name: Str("")}, false).
		Find(&[]models.Slide{}).Statement

	sql := stmt.SQL.String()
	assert.NotContains(t, sql, "JOIN")
	assert.Contains(t, sql, `"glissades"."nom" = $1`)
	assert.Equal(t, []interface{}{""}, stmt.Vars)
}
