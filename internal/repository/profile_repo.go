package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-dating/internal/db"
)

// ProfileUpdate is a partial set of profile fields; nil fields are left alone.
type ProfileUpdate struct {
	Bio        *string
	Age        *int
	Gender     *string
	LookingFor *string
	Location   *string
	PhotoURL   *string
	Interests  *string
}

func (u ProfileUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Bio != nil {
		cols["bio"] = *u.Bio
	}
	if u.Age != nil {
		cols["age"] = *u.Age
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	if u.LookingFor != nil {
		cols["looking_for"] = *u.LookingFor
	}
	if u.Location != nil {
		cols["location"] = *u.Location
	}
	if u.PhotoURL != nil {
		cols["photo_url"] = *u.PhotoURL
	}
	if u.Interests != nil {
		cols["interests"] = *u.Interests
	}
	return cols
}

// ProfileRepository provides data access for dating profiles.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// GetOrCreate returns the user's profile, creating an all-default row first
// when none exists.
//
// Behavior:
//   - Insert is "ignore on conflict" against the unique user_id index, so
//     concurrent first reads cannot produce duplicates or fail.
//   - Returns (nil, nil) when no store is configured.
//
// Example:
//
//	repo.GetOrCreate(ctx, 42) // same profile id on every call
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID uint64) (*db.Profile, error) {
	if storeMissing(r.db, "get or create profile") {
		return nil, nil
	}
	if err := r.ensure(ctx, userID); err != nil {
		return nil, err
	}
	return r.get(ctx, userID)
}

// Update applies only the supplied fields to the user's profile.
//
// The row is ensured first, so an update never silently matches zero rows
// for a user whose profile was not read yet. Returns the stored profile.
func (r *ProfileRepository) Update(ctx context.Context, userID uint64, in ProfileUpdate) (*db.Profile, error) {
	if storeMissing(r.db, "update profile") {
		return nil, nil
	}
	if err := r.ensure(ctx, userID); err != nil {
		return nil, err
	}

	if cols := in.columns(); len(cols) > 0 {
		err := r.db.WithContext(ctx).
			Model(&db.Profile{}).
			Where("user_id = ?", userID).
			Updates(cols).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	return r.get(ctx, userID)
}

// Browse returns up to limit candidate profiles for the caller.
//
// Behavior:
//   - Excludes the caller's own profile.
//   - Keeps candidates whose gender equals lookingFor, or is "other".
//     No profile stores gender "both", so "both" yields only "other".
//     Profiles with no gender set never match.
//   - One-directional: the candidate's own preference is not checked.
//   - Already liked/matched/blocked users are not excluded.
//   - Empty result when the caller has no profile yet or no store is configured.
//   - Ordered by profile id.
func (r *ProfileRepository) Browse(ctx context.Context, userID uint64, lookingFor string, limit int) ([]db.Profile, error) {
	if storeMissing(r.db, "browse profiles") {
		return []db.Profile{}, nil
	}

	var own int64
	if err := r.db.WithContext(ctx).Model(&db.Profile{}).Where("user_id = ?", userID).Count(&own).Error; err != nil {
		return nil, err
	}
	if own == 0 {
		return []db.Profile{}, nil
	}

	query := r.db.WithContext(ctx).
		Where("user_id <> ?", userID).
		Where("(gender = ? OR gender = ?)", lookingFor, db.GenderOther).
		Order("id ASC").
		Limit(limit)

	profiles := []db.Profile{}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) ensure(ctx context.Context, userID uint64) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&db.Profile{UserID: userID}).Error
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) get(ctx context.Context, userID uint64) (*db.Profile, error) {
	var p db.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("profile for user %d: %w", userID, err)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
