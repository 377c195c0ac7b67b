// Package history persists completed matches for post-hoc querying. It is
// supplemental to the core protocol: only matches that have already
// reached DONE and been evicted from the active registry are recorded
// here, so it never backs live dispatch and cannot be used to resume an
// in-progress match across a restart.
package history

import (
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MatchRecord is the persisted row for one completed match.
type MatchRecord struct {
	gorm.Model
	Slug      string `gorm:"uniqueIndex"`
	GameID    string `gorm:"index"`
	Players   string
	Winner    string
	StartedAt time.Time
	EndedAt   time.Time
}

func (MatchRecord) TableName() string { return "match_history" }

// Store persists MatchRecords to Postgres via GORM.
type Store struct {
	db *gorm.DB
}

// NewStore opens the database connection and runs AutoMigrate, mirroring
// the teacher's repository.NewDatabase bootstrap.
func NewStore(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&MatchRecord{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// RecordMatch writes one completed match. Implements server.HistoryRecorder.
func (s *Store) RecordMatch(gameID, slug string, players []string, winner string, startedAt, endedAt time.Time) error {
	record := MatchRecord{
		Slug:      slug,
		GameID:    gameID,
		Players:   strings.Join(players, ","),
		Winner:    winner,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
	return s.db.Create(&record).Error
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
