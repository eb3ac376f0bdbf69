package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
)

// UpsertUserInput carries the identity key plus optional mutable fields.
// A nil pointer means "not supplied" and leaves the stored value untouched.
type UpsertUserInput struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

// UserRepository provides data access for identity records.
type UserRepository struct {
	db          *gorm.DB
	ownerOpenID string
}

// NewUserRepository creates a repository bound to the given DB connection.
// ownerOpenID is the identity key granted the admin role on upsert; empty disables it.
func NewUserRepository(database *gorm.DB, ownerOpenID string) *UserRepository {
	return &UserRepository{db: database, ownerOpenID: strings.TrimSpace(ownerOpenID)}
}

// Available reports whether a store is configured.
func (r *UserRepository) Available() bool {
	return r.db != nil
}

// Now returns the store's clock, falling back to wall time without a store.
func (r *UserRepository) Now() time.Time {
	if r.db == nil {
		return time.Now()
	}
	return r.db.NowFunc()
}

// Upsert creates the user on first sight of an identity key, otherwise refreshes
// the supplied mutable fields. Identity and creation time are never rewritten.
//
// Behavior:
//   - Missing OpenID fails with ErrValidation (checked before touching the store).
//   - Supplied fields go to both the insert values and the update set.
//   - Role is forced to admin for the configured owner when no role was supplied.
//   - When nothing else changes, last_signed_in is refreshed anyway.
//   - Without a store the call is a logged no-op.
func (r *UserRepository) Upsert(ctx context.Context, in UpsertUserInput) error {
	if strings.TrimSpace(in.OpenID) == "" {
		return fmt.Errorf("%w: user openId is required for upsert", svcErr.ErrValidation)
	}
	if in.Role != nil && *in.Role != db.RoleUser && *in.Role != db.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", svcErr.ErrValidation, *in.Role)
	}
	if storeMissing(r.db, "upsert user") {
		return nil
	}

	now := r.db.NowFunc()
	values := db.User{OpenID: in.OpenID, Role: db.RoleUser, UpdatedAt: now}
	var updates []string

	if in.Name != nil {
		values.Name = in.Name
		updates = append(updates, "name")
	}
	if in.Email != nil {
		values.Email = in.Email
		updates = append(updates, "email")
	}
	if in.LoginMethod != nil {
		values.LoginMethod = in.LoginMethod
		updates = append(updates, "login_method")
	}
	if role, ok := r.resolveRole(in); ok {
		values.Role = role
		updates = append(updates, "role")
	}

	values.LastSignedIn = now
	if in.LastSignedIn != nil {
		values.LastSignedIn = *in.LastSignedIn
		updates = append(updates, "last_signed_in")
	}
	if len(updates) == 0 {
		updates = append(updates, "last_signed_in")
	}
	updates = append(updates, "updated_at")

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "open_id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(&values).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// resolveRole is the single privilege escalation path: an explicit role wins,
// otherwise the configured owner identity becomes admin.
func (r *UserRepository) resolveRole(in UpsertUserInput) (string, bool) {
	if in.Role != nil {
		return *in.Role, true
	}
	if r.ownerOpenID != "" && in.OpenID == r.ownerOpenID {
		return db.RoleAdmin, true
	}
	return "", false
}

// GetByOpenID looks up a user by identity key.
// Returns (nil, nil) when the user does not exist or no store is configured.
func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (*db.User, error) {
	if storeMissing(r.db, "get user") {
		return nil, nil
	}

	var user db.User
	err := r.db.WithContext(ctx).Where("open_id = ?", openID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
