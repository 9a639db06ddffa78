package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"westscore/internal/domain"
	"westscore/internal/ports"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// blobRecord is one keyed game list.
type blobRecord struct {
	Key       string `gorm:"column:blob_key;primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (blobRecord) TableName() string {
	return "game_blobs"
}

// Open connects to a sqlite file or a postgres DSN. gorm logs only when debug is set.
func Open(driver, dsn string, debug bool) (*gorm.DB, error) {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      level,
			Colorful:      true,
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	return db, nil
}

// Store keeps a game list as one row of game_blobs.
type Store struct {
	db  *gorm.DB
	key string
}

// New migrates the blob table and returns a store for key.
func New(db *gorm.DB, key string) (*Store, error) {
	if err := db.AutoMigrate(&blobRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate game_blobs: %w", err)
	}
	return &Store{db: db, key: key}, nil
}

func (s *Store) Load(ctx context.Context) ([]domain.Game, error) {
	var rec blobRecord
	err := s.db.WithContext(ctx).First(&rec, "blob_key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []domain.Game{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	return ports.DecodeGames([]byte(rec.Value))
}

func (s *Store) Save(ctx context.Context, games []domain.Game) error {
	data, err := ports.EncodeGames(games)
	if err != nil {
		return err
	}
	rec := blobRecord{Key: s.key, Value: string(data)}
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}

var _ ports.GameStore = (*Store)(nil)
