package messages

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/repository"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
)

const (
	DefaultConversationLimit = 50
	MaxConversationLimit     = 200
)

// Service implements the messages.* procedures on top of the message
// repository and the unread-count cache.
type Service struct {
	appCtx      *app.AppContext
	matchRepo   *repository.MatchRepository
	messageRepo *repository.MessageRepository

	pb.UnimplementedMessagesServiceServer
}

// NewMessagesService creates a new Messages service with dependencies from AppContext.
func NewMessagesService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		matchRepo:   repository.NewMatchRepository(appCtx.DB),
		messageRepo: repository.NewMessageRepository(appCtx.DB),
	}
}

// Send appends a message from the caller to the other participant.
//
// Behavior:
//   - The caller must be a participant of the match.
//   - receiverId must be the other participant.
//   - Content emptiness is not validated.
//   - Drops the receiver's cached unread count.
//
// Example:
//
//	svc.Send(ctx, &pb.SendMessageRequest{MatchId: 1, ReceiverId: 2, Content: "hi"})
func (s *Service) Send(ctx context.Context, req *pb.SendMessageRequest) (*pb.SuccessResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("Send called", "sender", user.ID, "match_id", req.GetMatchId(), "receiver", req.GetReceiverId())

	m, err := s.participantMatch(ctx, req.GetMatchId(), user.ID)
	if err != nil {
		return nil, err
	}
	if other, _ := m.OtherUser(user.ID); other != req.GetReceiverId() {
		return nil, svcErr.PermissionDenied("receiver is not the other participant of this match")
	}

	if _, err := s.messageRepo.Send(ctx, m.ID, user.ID, req.GetReceiverId(), req.GetContent()); err != nil {
		s.appCtx.Logger.Error("Send failed", "match_id", m.ID, "err", err)
		return nil, svcErr.Map(err)
	}

	if err := s.appCtx.RedisCache.InvalidateUnreadCount(ctx, req.GetReceiverId()); err != nil {
		s.appCtx.Logger.Warn("unread count invalidation failed", "user_id", req.GetReceiverId(), "err", err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}

// GetConversation marks the caller's incoming messages of the match as read
// and returns the transcript oldest first.
//
// Behavior:
//   - limit defaults to 50 and is capped at 200; negative is rejected.
//   - The caller must be a participant of the match.
//   - Drops the caller's cached unread count.
func (s *Service) GetConversation(ctx context.Context, req *pb.GetConversationRequest) (*pb.ConversationResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("GetConversation called", "user_id", user.ID, "match_id", req.GetMatchId(), "limit", req.GetLimit())

	limit := int(req.GetLimit())
	switch {
	case limit < 0:
		return nil, svcErr.InvalidArgument("limit must not be negative")
	case limit == 0:
		limit = DefaultConversationLimit
	case limit > MaxConversationLimit:
		limit = MaxConversationLimit
	}

	m, err := s.participantMatch(ctx, req.GetMatchId(), user.ID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.GetConversation(ctx, m.ID, user.ID, limit)
	if err != nil {
		s.appCtx.Logger.Error("GetConversation failed", "match_id", m.ID, "err", err)
		return nil, svcErr.Map(err)
	}
	if err := s.appCtx.RedisCache.InvalidateUnreadCount(ctx, user.ID); err != nil {
		s.appCtx.Logger.Warn("unread count invalidation failed", "user_id", user.ID, "err", err)
	}

	resp := &pb.ConversationResponse{Messages: make([]*pb.Message, 0, len(msgs))}
	for i := range msgs {
		resp.Messages = append(resp.Messages, pb.MessageFromModel(&msgs[i]))
	}
	return resp, nil
}

// UnreadCount returns how many unread messages await the caller.
// Cache-first strategy:
//  1. Attempts to read from Redis (unread:count:userID), refreshing its TTL.
//  2. On a miss falls back to the DB via repository.CountUnread.
//  3. Stores the DB value with a 1h TTL.
func (s *Service) UnreadCount(ctx context.Context, _ *emptypb.Empty) (*pb.UnreadCountResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("UnreadCount called", "user_id", user.ID)

	// try cache first
	if n, ok, err := s.appCtx.RedisCache.GetUnreadCount(ctx, user.ID); err == nil && ok {
		return &pb.UnreadCountResponse{Count: uint64(n)}, nil
	}

	// fallback: DB
	count, err := s.messageRepo.CountUnread(ctx, user.ID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	_ = s.appCtx.RedisCache.SetUnreadCount(ctx, user.ID, count)

	return &pb.UnreadCountResponse{Count: uint64(count)}, nil
}

// participantMatch loads a match and checks userID takes part in it.
func (s *Service) participantMatch(ctx context.Context, matchID, userID uint64) (*db.Match, error) {
	if matchID == 0 {
		return nil, svcErr.InvalidArgument("matchId is required")
	}
	m, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if m == nil {
		return nil, svcErr.NotFound("match not found")
	}
	if !m.HasUser(userID) {
		return nil, svcErr.PermissionDenied("not a participant of this match")
	}
	return m, nil
}
