package storage

import (
	"context"
	"testing"

	"installations_api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeder inserts fixtures into a backend and returns them with ids set.
type seeder struct {
	borough func(models.Borough) models.Borough
	aquatic func(models.AquaticFacility) models.AquaticFacility
	rink    func(models.IceRink) models.IceRink
	slide   func(models.Slide) models.Slide
}

type fixtures struct {
	verdun, anjou, outremont models.Borough
}

func seed(s seeder) fixtures {
	fx := fixtures{
		verdun:    s.borough(models.Borough{Name: "Verdun", Key: "VER", DateMaj: "2021-11-02 10:00:00"}),
		anjou:     s.borough(models.Borough{Name: "Anjou", Key: "ANJ", DateMaj: "2020-03-01 08:00:00"}),
		outremont: s.borough(models.Borough{Name: "Outremont", Key: "OUT", DateMaj: "1999-2021"}),
	}
	s.aquatic(models.AquaticFacility{Name: "Piscine Zeta", Type: "Piscine", BoroughID: fx.verdun.ID})
	s.aquatic(models.AquaticFacility{Name: "Piscine Alpha", Type: "Pataugeoire", BoroughID: fx.anjou.ID})
	s.aquatic(models.AquaticFacility{Name: "Piscine Beta", Type: "Piscine", BoroughID: fx.outremont.ID})
	s.rink(models.IceRink{Name: "Patinoire Nord", DateHeure: "2021-01-05 09:00", BoroughID: fx.anjou.ID})
	s.rink(models.IceRink{Name: "Patinoire Sud", DateHeure: "05/01/2021 09:00", BoroughID: fx.verdun.ID})
	s.rink(models.IceRink{Name: "Patinoire Est", DateHeure: "2020-12-30 09:00", BoroughID: fx.verdun.ID})
	s.slide(models.Slide{Name: "Glissade Ouest", Condition: "Bonne", BoroughID: fx.verdun.ID})
	s.slide(models.Slide{Name: "Glissade Centre", Condition: "Mauvaise", BoroughID: fx.anjou.ID})
	return fx
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}

func aquaticName(a models.AquaticFacility) string { return a.Name }
func rinkName(r models.IceRink) string            { return r.Name }
func slideName(s models.Slide) string             { return s.Name }

// runBackendContract checks the query semantics every Backend must share.
func runBackendContract(t *testing.T, b Backend, s seeder) {
	ctx := context.Background()
	fx := seed(s)

	t.Run("no filter keeps storage order", func(t *testing.T) {
		aq, err := b.AquaticFacilities(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Piscine Zeta", "Piscine Alpha", "Piscine Beta"}, names(aq, aquaticName))

		rinks, err := b.IceRinks(ctx, Filter{})
		require.NoError(t, err)
		assert.Len(t, rinks, 3)
	})

	t.Run("borough name is exact", func(t *testing.T) {
		aq, err := b.AquaticFacilities(ctx, Filter{BoroughName: Str("Verdun")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Piscine Zeta"}, names(aq, aquaticName))

		rinks, err := b.IceRinks(ctx, Filter{BoroughName: Str("Verdun")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Patinoire Sud", "Patinoire Est"}, names(rinks, rinkName))

		slides, err := b.Slides(ctx, Filter{BoroughName: Str("verdun")})
		require.NoError(t, err)
		assert.NotNil(t, slides)
		assert.Empty(t, slides)
	})

	t.Run("unknown borough yields empty slices", func(t *testing.T) {
		aq, err := b.AquaticFacilities(ctx, Filter{BoroughName: Str("Atlantis")})
		require.NoError(t, err)
		assert.NotNil(t, aq)
		assert.Empty(t, aq)
	})

	t.Run("borough update prefix", func(t *testing.T) {
		aq, err := b.AquaticFacilities(ctx, Filter{BoroughUpdatedPrefix: Str("2021")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Piscine Zeta"}, names(aq, aquaticName))

		slides, err := b.Slides(ctx, Filter{BoroughUpdatedPrefix: Str("2021")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Glissade Ouest"}, names(slides, slideName))
	})

	t.Run("like wildcards are literal", func(t *testing.T) {
		aq, err := b.AquaticFacilities(ctx, Filter{BoroughUpdatedPrefix: Str("20_1")})
		require.NoError(t, err)
		assert.Empty(t, aq)
	})

	t.Run("rink date contains", func(t *testing.T) {
		rinks, err := b.IceRinks(ctx, Filter{DateHeureContains: Str("2021")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Patinoire Nord", "Patinoire Sud"}, names(rinks, rinkName))
	})

	t.Run("facility name is exact", func(t *testing.T) {
		slides, err := b.Slides(ctx, Filter{Name: Str("Glissade Centre")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Glissade Centre"}, names(slides, slideName))

		aq, err := b.AquaticFacilities(ctx, Filter{Name: Str("")})
		require.NoError(t, err)
		assert.Empty(t, aq)
	})

	t.Run("boroughs", func(t *testing.T) {
		all, err := b.Boroughs(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		found, err := b.BoroughsByIDs(ctx, []uint{fx.anjou.ID, 999999})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Anjou", found[0].Name)
	})

	t.Run("subscriber and followers", func(t *testing.T) {
		sub := models.Subscriber{
			FullName: "Marie Tremblay",
			Email:    "marie@example.com",
			Boroughs: []models.Borough{{ID: fx.verdun.ID}, {ID: fx.anjou.ID}},
		}
		require.NoError(t, b.CreateSubscriber(ctx, &sub))
		assert.NotZero(t, sub.ID)

		n, err := b.CountFollowers(ctx, fx.verdun.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = b.CountFollowers(ctx, fx.outremont.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	assert.NoError(t, b.Ping(ctx))
}
