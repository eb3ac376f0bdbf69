package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-dating/internal/db"
)

// MatchRepository provides data access methods for the Match model.
// It encapsulates all queries related to likes/matches between users.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// Like records that actor liked target.
//
// Behavior:
//   - The pair is normalized so the smaller id is stored first.
//   - Insert is ignored on conflict with idx_match_pair, so repeated or
//     reciprocal likes keep exactly one row and never change its status.
//   - Returns whether a new row was written.
//
// Example:
//
//	repo.Like(ctx, 2, 1) // stores (1, 2, "liked")
func (r *MatchRepository) Like(ctx context.Context, actorID, targetID uint64) (bool, error) {
	if storeMissing(r.db, "create match") {
		return false, nil
	}

	u1, u2 := db.NormalizePair(actorID, targetID)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id1"}, {Name: "user_id2"}},
			DoNothing: true,
		}).
		Create(&db.Match{UserID1: u1, UserID2: u2, Status: db.MatchStatusLiked})
	if res.Error != nil {
		return false, fmt.Errorf("failed to create match: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListForUser returns every match the user participates in, whatever its status.
func (r *MatchRepository) ListForUser(ctx context.Context, userID uint64) ([]db.Match, error) {
	if storeMissing(r.db, "list matches") {
		return []db.Match{}, nil
	}

	matches := []db.Match{}
	err := r.db.WithContext(ctx).
		Where("user_id1 = ? OR user_id2 = ?", userID, userID).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetByID returns the match or (nil, nil) when it does not exist.
func (r *MatchRepository) GetByID(ctx context.Context, matchID uint64) (*db.Match, error) {
	if storeMissing(r.db, "get match") {
		return nil, nil
	}

	var m db.Match
	err := r.db.WithContext(ctx).Take(&m, matchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateStatus overwrites the status of a match by id.
// Participant checks belong to the caller.
func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID uint64, status string) error {
	if storeMissing(r.db, "update match status") {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ?", matchID).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	return nil
}
