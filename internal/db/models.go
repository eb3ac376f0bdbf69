package db

import (
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	LookingForMale   = "male"
	LookingForFemale = "female"
	LookingForBoth   = "both"

	MatchStatusLiked   = "liked"
	MatchStatusMatched = "matched"
	MatchStatusBlocked = "blocked"
)

// User is the identity record created on first external authentication.
// OpenID is the identity key issued by the OAuth provider.
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	OpenID       string    `gorm:"column:open_id;uniqueIndex;size:64;not null"`
	Name         *string   `gorm:"type:text"`
	Email        *string   `gorm:"size:320"`
	LoginMethod  *string   `gorm:"size:64"`
	Role         string    `gorm:"size:16;not null;default:user"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	LastSignedIn time.Time `gorm:"not null"`
}

// Profile is the one-to-one dating extension of a User.
//
// Interests is a comma-delimited list; see SplitInterests/JoinInterests.
// Verified is an integer flag (0/1).
type Profile struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `gorm:"uniqueIndex;not null"`
	Bio        *string   `gorm:"type:text"`
	Age        *int
	Gender     *string   `gorm:"size:16;index"`
	LookingFor *string   `gorm:"size:16"`
	Location   *string   `gorm:"size:255"`
	PhotoURL   *string   `gorm:"column:photo_url;type:text"`
	Interests  *string   `gorm:"type:text"`
	Verified   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Match is an undirected relation between two users.
//
// The pair is stored normalized (UserID1 < UserID2) and the composite unique
// index idx_match_pair guarantees one row per unordered pair.
type Match struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID1   uint64    `gorm:"column:user_id1;not null;uniqueIndex:idx_match_pair,priority:1"`
	UserID2   uint64    `gorm:"column:user_id2;not null;uniqueIndex:idx_match_pair,priority:2;index"`
	Status    string    `gorm:"size:16;not null;default:liked"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Message is a directed message scoped to a Match.
//
// Index idx_message_inbox(match_id, receiver_id, is_read) serves the bulk
// mark-as-read update on conversation open.
type Message struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	MatchID    uint64    `gorm:"not null;index:idx_message_inbox,priority:1"`
	SenderID   uint64    `gorm:"not null"`
	ReceiverID uint64    `gorm:"not null;index:idx_message_inbox,priority:2;index"`
	Content    string    `gorm:"type:text;not null"`
	Read       int       `gorm:"column:is_read;not null;default:0;index:idx_message_inbox,priority:3"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{&User{}, &Profile{}, &Match{}, &Message{}}
}

// NormalizePair orders two user ids so the smaller one comes first.
func NormalizePair(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}

// HasUser reports whether userID is one of the two participants.
func (m *Match) HasUser(userID uint64) bool {
	return m.UserID1 == userID || m.UserID2 == userID
}

// OtherUser returns the participant that is not userID.
func (m *Match) OtherUser(userID uint64) (uint64, bool) {
	switch userID {
	case m.UserID1:
		return m.UserID2, true
	case m.UserID2:
		return m.UserID1, true
	}
	return 0, false
}

func ValidGender(v string) bool {
	return v == GenderMale || v == GenderFemale || v == GenderOther
}

func ValidLookingFor(v string) bool {
	return v == LookingForMale || v == LookingForFemale || v == LookingForBoth
}

func ValidMatchStatus(v string) bool {
	return v == MatchStatusLiked || v == MatchStatusMatched || v == MatchStatusBlocked
}

// SplitInterests parses the stored delimited list, dropping blanks.
func SplitInterests(s *string) []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, part := range strings.Split(*s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinInterests renders interests in the stored delimited form.
func JoinInterests(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			cleaned = append(cleaned, it)
		}
	}
	return strings.Join(cleaned, ",")
}
