package storage

import (
	"context"
	"fmt"
	"time"

	"installations_api/internal/config"
	"installations_api/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Backend is everything the HTTP layer, the subscription service and the
// borough watcher need from storage. Store and MemoryStore implement it.
type Backend interface {
	AquaticFacilities(ctx context.Context, f Filter) ([]models.AquaticFacility, error)
	IceRinks(ctx context.Context, f Filter) ([]models.IceRink, error)
	Slides(ctx context.Context, f Filter) ([]models.Slide, error)
	Boroughs(ctx context.Context) ([]models.Borough, error)
	BoroughsByIDs(ctx context.Context, ids []uint) ([]models.Borough, error)
	CreateSubscriber(ctx context.Context, s *models.Subscriber) error
	CountFollowers(ctx context.Context, boroughID uint) (int64, error)
	Ping(ctx context.Context) error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*MemoryStore)(nil)
)

// ErrUnsupportedDriver is returned by Open for drivers gorm is not wired to.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open connects gorm to the configured database.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		dialector = mysql.Open(dsn)
	default:
		return nil, errors.Wrap(ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s", cfg.Driver)
	}
	return db, nil
}

// NewRedisClient returns a connected client, or an error when the server does
// not answer a ping within two seconds.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "ping redis %s", addr)
	}
	return client, nil
}
