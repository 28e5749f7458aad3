package repository

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/microtweet/microtweet/internal/config"
	"github.com/microtweet/microtweet/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
}

func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	// sqlite serves embedded and test deployments; postgres is the
	// production store.
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	return &Database{db}, nil
}

func (db *Database) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Tweet{},
		&models.Like{},
		&models.Picture{},
	)
}

// Seed inserts the bootstrap rows: a sentinel user and tweet (id 0), two
// known users and one follow edge between them. Inserts are
// conflict-ignore so repeated startups leave existing rows untouched.
func (db *Database) Seed(ctx context.Context) error {
	seed := []struct {
		query string
		args  []interface{}
	}{
		{"INSERT INTO users (id, api_key, name) VALUES (?, ?, ?) ON CONFLICT DO NOTHING", []interface{}{0, "None", "None"}},
		{"INSERT INTO users (id, api_key, name) VALUES (?, ?, ?) ON CONFLICT DO NOTHING", []interface{}{1, "test", "Test User"}},
		{"INSERT INTO users (id, api_key, name) VALUES (?, ?, ?) ON CONFLICT DO NOTHING", []interface{}{2, "test2", "Test User2"}},
		{"INSERT INTO follows (follower_id, followee_id) VALUES (?, ?) ON CONFLICT DO NOTHING", []interface{}{1, 2}},
		{"INSERT INTO tweets (id, content, author_id) VALUES (?, ?, ?) ON CONFLICT DO NOTHING", []interface{}{0, "None", 0}},
	}

	return db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range seed {
			if err := tx.Exec(s.query, s.args...).Error; err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}
		}
		return nil
	})
}

func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
