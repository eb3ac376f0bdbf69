package rpc

import (
	"time"

	"github.com/oggyb/muzz-dating/internal/db"
)

// User is the public view of an identity record.
type User struct {
	Id           uint64    `json:"id"`
	OpenId       string    `json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"loginMethod"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// MeResponse carries the current user, null for anonymous callers.
type MeResponse struct {
	User *User `json:"user"`
}

func (x *MeResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

// SuccessResponse is the reply of procedures that only acknowledge.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func (x *SuccessResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type Profile struct {
	Id         uint64    `json:"id"`
	UserId     uint64    `json:"userId"`
	Bio        *string   `json:"bio"`
	Age        *int32    `json:"age"`
	Gender     *string   `json:"gender"`
	LookingFor *string   `json:"lookingFor"`
	Location   *string   `json:"location"`
	PhotoUrl   *string   `json:"photoUrl"`
	Interests  []string  `json:"interests"`
	Verified   int32     `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}

func (x *ProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

// UpdateProfileRequest is a partial update: absent (null) fields are kept.
type UpdateProfileRequest struct {
	Bio        *string  `json:"bio,omitempty"`
	Age        *int32   `json:"age,omitempty"`
	Gender     *string  `json:"gender,omitempty"`
	LookingFor *string  `json:"lookingFor,omitempty"`
	Location   *string  `json:"location,omitempty"`
	PhotoUrl   *string  `json:"photoUrl,omitempty"`
	Interests  []string `json:"interests"`
}

func (x *UpdateProfileRequest) GetAge() *int32 {
	if x != nil {
		return x.Age
	}
	return nil
}

func (x *UpdateProfileRequest) GetGender() *string {
	if x != nil {
		return x.Gender
	}
	return nil
}

func (x *UpdateProfileRequest) GetLookingFor() *string {
	if x != nil {
		return x.LookingFor
	}
	return nil
}

type BrowseRequest struct {
	LookingFor string `json:"lookingFor"`
	// Limit defaults to 20 when zero.
	Limit int32 `json:"limit,omitempty"`
}

func (x *BrowseRequest) GetLookingFor() string {
	if x != nil {
		return x.LookingFor
	}
	return ""
}

func (x *BrowseRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type BrowseResponse struct {
	Profiles []*Profile `json:"profiles"`
}

type LikeRequest struct {
	TargetUserId uint64 `json:"targetUserId"`
}

func (x *LikeRequest) GetTargetUserId() uint64 {
	if x != nil {
		return x.TargetUserId
	}
	return 0
}

type Match struct {
	Id        uint64    `json:"id"`
	UserId1   uint64    `json:"userId1"`
	UserId2   uint64    `json:"userId2"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListMatchesResponse struct {
	Matches []*Match `json:"matches"`
}

type UpdateMatchStatusRequest struct {
	MatchId uint64 `json:"matchId"`
	Status  string `json:"status"`
}

func (x *UpdateMatchStatusRequest) GetMatchId() uint64 {
	if x != nil {
		return x.MatchId
	}
	return 0
}

func (x *UpdateMatchStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type Message struct {
	Id         uint64    `json:"id"`
	MatchId    uint64    `json:"matchId"`
	SenderId   uint64    `json:"senderId"`
	ReceiverId uint64    `json:"receiverId"`
	Content    string    `json:"content"`
	Read       int32     `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SendMessageRequest struct {
	MatchId    uint64 `json:"matchId"`
	ReceiverId uint64 `json:"receiverId"`
	Content    string `json:"content"`
}

func (x *SendMessageRequest) GetMatchId() uint64 {
	if x != nil {
		return x.MatchId
	}
	return 0
}

func (x *SendMessageRequest) GetReceiverId() uint64 {
	if x != nil {
		return x.ReceiverId
	}
	return 0
}

func (x *SendMessageRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type GetConversationRequest struct {
	MatchId uint64 `json:"matchId"`
	// Limit defaults to 50 when zero.
	Limit int32 `json:"limit,omitempty"`
}

func (x *GetConversationRequest) GetMatchId() uint64 {
	if x != nil {
		return x.MatchId
	}
	return 0
}

func (x *GetConversationRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ConversationResponse struct {
	Messages []*Message `json:"messages"`
}

type UnreadCountResponse struct {
	Count uint64 `json:"count"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// UserFromModel converts a stored user; nil stays nil.
func UserFromModel(u *db.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		Id:           u.ID,
		OpenId:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastSignedIn: u.LastSignedIn,
	}
}

// ProfileFromModel converts a stored profile, splitting the interest list.
func ProfileFromModel(p *db.Profile) *Profile {
	if p == nil {
		return nil
	}
	out := &Profile{
		Id:         p.ID,
		UserId:     p.UserID,
		Bio:        p.Bio,
		Gender:     p.Gender,
		LookingFor: p.LookingFor,
		Location:   p.Location,
		PhotoUrl:   p.PhotoURL,
		Interests:  db.SplitInterests(p.Interests),
		Verified:   int32(p.Verified),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Age != nil {
		age := int32(*p.Age)
		out.Age = &age
	}
	if out.Interests == nil {
		out.Interests = []string{}
	}
	return out
}

func MatchFromModel(m *db.Match) *Match {
	return &Match{
		Id:        m.ID,
		UserId1:   m.UserID1,
		UserId2:   m.UserID2,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func MessageFromModel(m *db.Message) *Message {
	return &Message{
		Id:         m.ID,
		MatchId:    m.MatchID,
		SenderId:   m.SenderID,
		ReceiverId: m.ReceiverID,
		Content:    m.Content,
		Read:       int32(m.Read),
		CreatedAt:  m.CreatedAt,
	}
}
