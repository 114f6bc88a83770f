package storage

import (
	"context"
	"strings"

	"installations_api/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// followersTable is the many2many join table of models.Subscriber.
const followersTable = "abonne_arrondissements"

// Store is the gorm-backed Backend.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates every table.
func (s *Store) Migrate() error {
	return errors.Wrap(s.db.AutoMigrate(models.All()...), "migrate")
}

// scope applies f to a facility query. Borough conditions go through an
// inner join on the belongs-to relation, which also fills the Borough field.
// Rows come back in storage (id) order.
func (s *Store) scope(ctx context.Context, f Filter, rink bool) *gorm.DB {
	q := s.db.WithContext(ctx)
	if f.joinsBorough() {
		q = q.InnerJoins("Borough")
		if f.BoroughName != nil {
			q = q.Where(clause.Eq{Column: clause.Column{Table: "Borough", Name: "nom"}, Value: *f.BoroughName})
		}
		if f.BoroughUpdatedPrefix != nil {
			q = q.Where(clause.Like{Column: clause.Column{Table: "Borough", Name: "date_maj"}, Value: escapeLike(*f.BoroughUpdatedPrefix) + "%"})
		}
	}
	if f.Name != nil {
		q = q.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "nom"}, Value: *f.Name})
	}
	if rink && f.DateHeureContains != nil {
		q = q.Where(clause.Like{Column: clause.Column{Table: clause.CurrentTable, Name: "date_heure"}, Value: "%" + escapeLike(*f.DateHeureContains) + "%"})
	}
	return q.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
}

func (s *Store) AquaticFacilities(ctx context.Context, f Filter) ([]models.AquaticFacility, error) {
	out := []models.AquaticFacility{}
	if err := s.scope(ctx, f, false).Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list aquatic facilities")
	}
	return out, nil
}

func (s *Store) IceRinks(ctx context.Context, f Filter) ([]models.IceRink, error) {
	out := []models.IceRink{}
	if err := s.scope(ctx, f, true).Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list ice rinks")
	}
	return out, nil
}

func (s *Store) Slides(ctx context.Context, f Filter) ([]models.Slide, error) {
	out := []models.Slide{}
	if err := s.scope(ctx, f, false).Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list slides")
	}
	return out, nil
}

func (s *Store) Boroughs(ctx context.Context) ([]models.Borough, error) {
	out := []models.Borough{}
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list boroughs")
	}
	return out, nil
}

func (s *Store) BoroughsByIDs(ctx context.Context, ids []uint) ([]models.Borough, error) {
	out := []models.Borough{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "find boroughs")
	}
	return out, nil
}

// CreateSubscriber inserts the subscriber and its borough links in a single
// transaction. Followed boroughs must already exist; they are referenced,
// never upserted.
func (s *Store) CreateSubscriber(ctx context.Context, sub *models.Subscriber) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Boroughs.*").Create(sub).Error
	})
	return errors.Wrap(err, "create subscriber")
}

func (s *Store) CountFollowers(ctx context.Context, boroughID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(followersTable).Where("arrondissement_id = ?", boroughID).Count(&n).Error
	return n, errors.Wrap(err, "count followers")
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
