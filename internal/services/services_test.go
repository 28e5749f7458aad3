package services

import (
	"context"
	"testing"

	"github.com/microtweet/microtweet/internal/config"
	"github.com/microtweet/microtweet/internal/models"
	"github.com/microtweet/microtweet/internal/repository"
	"github.com/microtweet/microtweet/pkg/logger"
)

// newTestDB opens a fresh in-memory store with the seed rows loaded:
// users 0..2, follow (1 -> 2), sentinel tweet 0. One connection only,
// the in-memory database lives on it.
func newTestDB(t *testing.T) *repository.Database {
	t.Helper()

	db, err := repository.NewDatabase(&config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := db.Seed(context.Background()); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return db
}

func testLogger() *logger.Logger {
	return logger.NewLogger("fatal")
}

func newUserService(db *repository.Database) *UserService {
	return NewUserService(db, repository.NewUserRepository(db.DB), repository.NewFollowRepository(db.DB), testLogger())
}

func newTweetService(db *repository.Database) *TweetService {
	return NewTweetService(db, repository.NewTweetRepository(db.DB), testLogger())
}

func newLikeService(db *repository.Database) *LikeService {
	return NewLikeService(db, repository.NewLikeRepository(db.DB), testLogger())
}

func seedUser(t *testing.T, db *repository.Database, id uint64) *models.User {
	t.Helper()

	user, err := repository.NewUserRepository(db.DB).GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to load seed user %d: %v", id, err)
	}
	if user == nil {
		t.Fatalf("Seed user %d missing", id)
	}
	return user
}
