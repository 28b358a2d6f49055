package handlers

import (
	userRepoPkg "schedulematch/database/repository/user"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository
	Tokens   utils.TokenCache

	// Account endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	SearchUsersHandler      gin.HandlerFunc

	// Schedule endpoints
	UpsertScheduleHandler gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	ScheduleRangeHandler  gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc

	// Friend endpoints
	SendFriendRequestHandler    gin.HandlerFunc
	RespondFriendRequestHandler gin.HandlerFunc
	RemoveFriendHandler         gin.HandlerFunc
	ListFriendsHandler          gin.HandlerFunc
	ListFriendRequestsHandler   gin.HandlerFunc

	// Match endpoints
	ListMatchesHandler       gin.HandlerFunc
	ListMatchRequestsHandler gin.HandlerFunc
	RequestMatchHandler      gin.HandlerFunc
	RespondMatchHandler      gin.HandlerFunc
	OverlapHandler           gin.HandlerFunc
	DeleteMatchHandler       gin.HandlerFunc
}

// NewHandlerBundle wires every handler against its service.
func NewHandlerBundle(uh *UserHandler, sh *ScheduleHandler, fh *FriendHandler, mh *MatchHandler) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: uh.UserRepo,
		Tokens:   uh.Tokens,

		RegisterUserHandler:     uh.RegisterUserHandler,
		AuthenticateUserHandler: uh.AuthenticateUserHandler,
		LogoutHandler:           uh.LogoutHandler,
		GetProfileHandler:       uh.GetProfileHandler,
		UpdateProfileHandler:    uh.UpdateProfileHandler,
		SearchUsersHandler:      uh.SearchUsersHandler,

		UpsertScheduleHandler: sh.UpsertScheduleHandler,
		GetScheduleHandler:    sh.GetScheduleHandler,
		ScheduleRangeHandler:  sh.ScheduleRangeHandler,
		DeleteScheduleHandler: sh.DeleteScheduleHandler,

		SendFriendRequestHandler:    fh.SendFriendRequestHandler,
		RespondFriendRequestHandler: fh.RespondFriendRequestHandler,
		RemoveFriendHandler:         fh.RemoveFriendHandler,
		ListFriendsHandler:          fh.ListFriendsHandler,
		ListFriendRequestsHandler:   fh.ListFriendRequestsHandler,

		ListMatchesHandler:       mh.ListMatchesHandler,
		ListMatchRequestsHandler: mh.ListMatchRequestsHandler,
		RequestMatchHandler:      mh.RequestMatchHandler,
		RespondMatchHandler:      mh.RespondMatchHandler,
		OverlapHandler:           mh.OverlapHandler,
		DeleteMatchHandler:       mh.DeleteMatchHandler,
	}
}
