package db

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-dating/internal/logger"
)

var (
	seedLocations = []string{"London", "Manchester", "Leeds", "Bristol", "Glasgow"}
	seedInterests = []string{"hiking", "cooking", "films", "travel", "music", "reading", "football", "art"}
	seedOpeners   = []string{"Hey! How's your week going?", "Love your photos :)", "Fancy a coffee sometime?"}
)

// SeedTestData resets the database and populates it with demo data.
//
// Behavior:
//  1. Clears messages, matches, profiles and users.
//  2. Creates 20 users (10 male, 10 female) with filled-in profiles.
//  3. Each user likes ~4 others of the opposite gender; pairs are normalized
//     and duplicates are ignored by the unique pair index.
//  4. Every 3rd match is marked as matched and gets a short conversation.
//
// Returns the seeded users so callers can mint dev sessions for them.
// Compatible with MySQL, Postgres and SQLite.
func SeedTestData(db *gorm.DB) ([]User, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"messages", "matches", "profiles", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
		switch db.Dialector.Name() {
		case "mysql":
			db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		case "sqlite":
			db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table)
		}
	}
	logger.Info("cleared existing data")

	// --- Users + profiles ---
	users := make([]User, 0, 20)
	for i := 1; i <= 20; i++ {
		name := fmt.Sprintf("Demo User %d", i)
		email := fmt.Sprintf("user%d@example.com", i)
		method := "demo"

		user := User{
			OpenID:       fmt.Sprintf("demo-user-%d", i),
			Name:         &name,
			Email:        &email,
			LoginMethod:  &method,
			Role:         RoleUser,
			LastSignedIn: time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to seed user: %w", err)
		}

		gender, lookingFor := GenderMale, LookingForFemale
		if i > 10 {
			gender, lookingFor = GenderFemale, LookingForMale
		}
		bio := fmt.Sprintf("Hi, I'm user %d.", i)
		age := 21 + r.Intn(20)
		location := seedLocations[r.Intn(len(seedLocations))]
		interests := JoinInterests([]string{
			seedInterests[r.Intn(len(seedInterests))],
			seedInterests[r.Intn(len(seedInterests))],
		})

		profile := Profile{
			UserID:     user.ID,
			Bio:        &bio,
			Age:        &age,
			Gender:     &gender,
			LookingFor: &lookingFor,
			Location:   &location,
			Interests:  &interests,
			Verified:   i % 2,
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("failed to seed profile: %w", err)
		}
		users = append(users, user)
	}
	logger.Info("seeded users and profiles", "count", len(users))

	// --- Matches + messages ---
	counter := 0
	for i, actor := range users {
		for j := 0; j < 4; j++ {
			k := r.Intn(len(users))
			if sameSide(i, k) {
				continue
			}
			target := users[k]

			u1, u2 := NormalizePair(actor.ID, target.ID)
			match := Match{UserID1: u1, UserID2: u2, Status: MatchStatusLiked}
			if counter%3 == 0 {
				match.Status = MatchStatusMatched
			}
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&match)
			if res.Error != nil {
				return nil, fmt.Errorf("failed to seed match: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}

			if match.Status == MatchStatusMatched {
				if err := seedConversation(db, r, match); err != nil {
					return nil, err
				}
			}
			counter++
		}
	}
	logger.Info("seeded matches", "count", counter)

	return users, nil
}

func seedConversation(db *gorm.DB, r *rand.Rand, m Match) error {
	msgs := []Message{
		{MatchID: m.ID, SenderID: m.UserID1, ReceiverID: m.UserID2, Content: seedOpeners[r.Intn(len(seedOpeners))], Read: 1},
		{MatchID: m.ID, SenderID: m.UserID2, ReceiverID: m.UserID1, Content: "Hi! Doing great, you?"},
	}
	if err := db.Create(&msgs).Error; err != nil {
		return fmt.Errorf("failed to seed messages: %w", err)
	}
	return nil
}

// sameSide reports whether both seed indexes fall in the same gender block.
func sameSide(a, b int) bool {
	return (a < 10) == (b < 10)
}
