// Package rpc defines the dating.v1 gRPC services: server interfaces,
// service descriptors, clients and the message types they exchange.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	AuthService_Me_FullMethodName                  = "/dating.v1.AuthService/Me"
	AuthService_Logout_FullMethodName              = "/dating.v1.AuthService/Logout"
	ProfileService_Get_FullMethodName              = "/dating.v1.ProfileService/Get"
	ProfileService_Update_FullMethodName           = "/dating.v1.ProfileService/Update"
	DiscoverService_Browse_FullMethodName          = "/dating.v1.DiscoverService/Browse"
	DiscoverService_Like_FullMethodName            = "/dating.v1.DiscoverService/Like"
	MatchesService_List_FullMethodName             = "/dating.v1.MatchesService/List"
	MatchesService_UpdateStatus_FullMethodName     = "/dating.v1.MatchesService/UpdateStatus"
	MessagesService_Send_FullMethodName            = "/dating.v1.MessagesService/Send"
	MessagesService_GetConversation_FullMethodName = "/dating.v1.MessagesService/GetConversation"
	MessagesService_UnreadCount_FullMethodName     = "/dating.v1.MessagesService/UnreadCount"
	SystemService_Health_FullMethodName            = "/dating.v1.SystemService/Health"
)

// unaryHandler adapts a typed server method to a grpc.MethodHandler.
func unaryHandler[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, WithJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- AuthService ----

type AuthServiceServer interface {
	Me(context.Context, *emptypb.Empty) (*MeResponse, error)
	Logout(context.Context, *emptypb.Empty) (*SuccessResponse, error)
}

type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) Me(context.Context, *emptypb.Empty) (*MeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Me not implemented")
}
func (UnimplementedAuthServiceServer) Logout(context.Context, *emptypb.Empty) (*SuccessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Logout not implemented")
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dating.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Me", Handler: unaryHandler(AuthService_Me_FullMethodName, AuthServiceServer.Me)},
		{MethodName: "Logout", Handler: unaryHandler(AuthService_Logout_FullMethodName, AuthServiceServer.Logout)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

type AuthServiceClient interface {
	Me(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*MeResponse, error)
	Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*SuccessResponse, error)
}

type authServiceClient struct{ cc grpc.ClientConnInterface }

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) Me(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*MeResponse, error) {
	return invoke[MeResponse](ctx, c.cc, AuthService_Me_FullMethodName, in, opts)
}

func (c *authServiceClient) Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, c.cc, AuthService_Logout_FullMethodName, in, opts)
}

// ---- ProfileService ----

type ProfileServiceServer interface {
	Get(context.Context, *emptypb.Empty) (*ProfileResponse, error)
	Update(context.Context, *UpdateProfileRequest) (*ProfileResponse, error)
}

type UnimplementedProfileServiceServer struct{}

func (UnimplementedProfileServiceServer) Get(context.Context, *emptypb.Empty) (*ProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedProfileServiceServer) Update(context.Context, *UpdateProfileRequest) (*ProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Update not implemented")
}

var ProfileService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dating.v1.ProfileService",
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Get", Handler: unaryHandler(ProfileService_Get_FullMethodName, ProfileServiceServer.Get)},
		{MethodName: "Update", Handler: unaryHandler(ProfileService_Update_FullMethodName, ProfileServiceServer.Update)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	s.RegisterService(&ProfileService_ServiceDesc, srv)
}

type ProfileServiceClient interface {
	Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ProfileResponse, error)
	Update(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
}

type profileServiceClient struct{ cc grpc.ClientConnInterface }

func NewProfileServiceClient(cc grpc.ClientConnInterface) ProfileServiceClient {
	return &profileServiceClient{cc}
}

func (c *profileServiceClient) Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, ProfileService_Get_FullMethodName, in, opts)
}

func (c *profileServiceClient) Update(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, ProfileService_Update_FullMethodName, in, opts)
}

// ---- DiscoverService ----

type DiscoverServiceServer interface {
	Browse(context.Context, *BrowseRequest) (*BrowseResponse, error)
	Like(context.Context, *LikeRequest) (*SuccessResponse, error)
}

type UnimplementedDiscoverServiceServer struct{}

func (UnimplementedDiscoverServiceServer) Browse(context.Context, *BrowseRequest) (*BrowseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Browse not implemented")
}
func (UnimplementedDiscoverServiceServer) Like(context.Context, *LikeRequest) (*SuccessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Like not implemented")
}

var DiscoverService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dating.v1.DiscoverService",
	HandlerType: (*DiscoverServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Browse", Handler: unaryHandler(DiscoverService_Browse_FullMethodName, DiscoverServiceServer.Browse)},
		{MethodName: "Like", Handler: unaryHandler(DiscoverService_Like_FullMethodName, DiscoverServiceServer.Like)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterDiscoverServiceServer(s grpc.ServiceRegistrar, srv DiscoverServiceServer) {
	s.RegisterService(&DiscoverService_ServiceDesc, srv)
}

type DiscoverServiceClient interface {
	Browse(ctx context.Context, in *BrowseRequest, opts ...grpc.CallOption) (*BrowseResponse, error)
	Like(ctx context.Context, in *LikeRequest, opts ...grpc.CallOption) (*SuccessResponse, error)
}

type discoverServiceClient struct{ cc grpc.ClientConnInterface }

func NewDiscoverServiceClient(cc grpc.ClientConnInterface) DiscoverServiceClient {
	return &discoverServiceClient{cc}
}

func (c *discoverServiceClient) Browse(ctx context.Context, in *BrowseRequest, opts ...grpc.CallOption) (*BrowseResponse, error) {
	return invoke[BrowseResponse](ctx, c.cc, DiscoverService_Browse_FullMethodName, in, opts)
}

func (c *discoverServiceClient) Like(ctx context.Context, in *LikeRequest, opts ...grpc.CallOption) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, c.cc, DiscoverService_Like_FullMethodName, in, opts)
}

// ---- MatchesService ----

type MatchesServiceServer interface {
	List(context.Context, *emptypb.Empty) (*ListMatchesResponse, error)
	UpdateStatus(context.Context, *UpdateMatchStatusRequest) (*SuccessResponse, error)
}

type UnimplementedMatchesServiceServer struct{}

func (UnimplementedMatchesServiceServer) List(context.Context, *emptypb.Empty) (*ListMatchesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedMatchesServiceServer) UpdateStatus(context.Context, *UpdateMatchStatusRequest) (*SuccessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateStatus not implemented")
}

var MatchesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dating.v1.MatchesService",
	HandlerType: (*MatchesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unaryHandler(MatchesService_List_FullMethodName, MatchesServiceServer.List)},
		{MethodName: "UpdateStatus", Handler: unaryHandler(MatchesService_UpdateStatus_FullMethodName, MatchesServiceServer.UpdateStatus)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterMatchesServiceServer(s grpc.ServiceRegistrar, srv MatchesServiceServer) {
	s.RegisterService(&MatchesService_ServiceDesc, srv)
}

type MatchesServiceClient interface {
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListMatchesResponse, error)
	UpdateStatus(ctx context.Context, in *UpdateMatchStatusRequest, opts ...grpc.CallOption) (*SuccessResponse, error)
}

type matchesServiceClient struct{ cc grpc.ClientConnInterface }

func NewMatchesServiceClient(cc grpc.ClientConnInterface) MatchesServiceClient {
	return &matchesServiceClient{cc}
}

func (c *matchesServiceClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListMatchesResponse, error) {
	return invoke[ListMatchesResponse](ctx, c.cc, MatchesService_List_FullMethodName, in, opts)
}

func (c *matchesServiceClient) UpdateStatus(ctx context.Context, in *UpdateMatchStatusRequest, opts ...grpc.CallOption) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, c.cc, MatchesService_UpdateStatus_FullMethodName, in, opts)
}

// ---- MessagesService ----

type MessagesServiceServer interface {
	Send(context.Context, *SendMessageRequest) (*SuccessResponse, error)
	GetConversation(context.Context, *GetConversationRequest) (*ConversationResponse, error)
	UnreadCount(context.Context, *emptypb.Empty) (*UnreadCountResponse, error)
}

type UnimplementedMessagesServiceServer struct{}

func (UnimplementedMessagesServiceServer) Send(context.Context, *SendMessageRequest) (*SuccessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Send not implemented")
}
func (UnimplementedMessagesServiceServer) GetConversation(context.Context, *GetConversationRequest) (*ConversationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetConversation not implemented")
}
func (UnimplementedMessagesServiceServer) UnreadCount(context.Context, *emptypb.Empty) (*UnreadCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnreadCount not implemented")
}

var MessagesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dating.v1.MessagesService",
	HandlerType: (*MessagesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Send", Handler: unaryHandler(MessagesService_Send_FullMethodName, MessagesServiceServer.Send)},
		{MethodName: "GetConversation", Handler: unaryHandler(MessagesService_GetConversation_FullMethodName, MessagesServiceServer.GetConversation)},
		{MethodName: "UnreadCount", Handler: unaryHandler(MessagesService_UnreadCount_FullMethodName, MessagesServiceServer.UnreadCount)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterMessagesServiceServer(s grpc.ServiceRegistrar, srv MessagesServiceServer) {
	s.RegisterService(&MessagesService_ServiceDesc, srv)
}

type MessagesServiceClient interface {
	Send(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SuccessResponse, error)
	GetConversation(ctx context.Context, in *GetConversationRequest, opts ...grpc.CallOption) (*ConversationResponse, error)
	UnreadCount(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*UnreadCountResponse, error)
}

type messagesServiceClient struct{ cc grpc.ClientConnInterface }

func NewMessagesServiceClient(cc grpc.ClientConnInterface) MessagesServiceClient {
	return &messagesServiceClient{cc}
}

func (c *messagesServiceClient) Send(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, c.cc, MessagesService_Send_FullMethodName, in, opts)
}

func (c *messagesServiceClient) GetConversation(ctx context.Context, in *GetConversationRequest, opts ...grpc.CallOption) (*ConversationResponse, error) {
	return invoke[ConversationResponse](ctx, c.cc, MessagesService_GetConversation_FullMethodName, in, opts)
}

func (c *messagesServiceClient) UnreadCount(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*UnreadCountResponse, error) {
	return invoke[UnreadCountResponse](ctx, c.cc, MessagesService_UnreadCount_FullMethodName, in, opts)
}

// ---- SystemService ----

type SystemServiceServer interface {
	Health(context.Context, *emptypb.Empty) (*HealthResponse, error)
}

type UnimplementedSystemServiceServer struct{}

func (UnimplementedSystemServiceServer) Health(context.Context, *emptypb.Empty) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}

var SystemService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dating.v1.SystemService",
	HandlerType: (*SystemServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Health", Handler: unaryHandler(SystemService_Health_FullMethodName, SystemServiceServer.Health)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterSystemServiceServer(s grpc.ServiceRegistrar, srv SystemServiceServer) {
	s.RegisterService(&SystemService_ServiceDesc, srv)
}

type SystemServiceClient interface {
	Health(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*HealthResponse, error)
}

type systemServiceClient struct{ cc grpc.ClientConnInterface }

func NewSystemServiceClient(cc grpc.ClientConnInterface) SystemServiceClient {
	return &systemServiceClient{cc}
}

func (c *systemServiceClient) Health(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*HealthResponse, error) {
	return invoke[HealthResponse](ctx, c.cc, SystemService_Health_FullMethodName, in, opts)
}
