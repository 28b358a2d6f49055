// models/user.go
package models

import "time"

// DefaultTimezone applies to users who never set one.
const DefaultTimezone = "UTC"

// User is an account together with its relationship sets. Friends, FriendRequests
// and MatchRequests hold usernames; FriendRequests and MatchRequests list senders.
type User struct {
	ID             string    `bson:"id" json:"-"`
	Username       string    `bson:"username" json:"username"`
	DisplayName    string    `bson:"display_name" json:"display_name"`
	HashedPassword string    `bson:"hashed_password" json:"-"`
	Timezone       string    `bson:"timezone" json:"timezone"`
	Friends        []string  `bson:"friends" json:"friends"`
	FriendRequests []string  `bson:"friend_requests" json:"friend_requests"`
	MatchRequests  []string  `bson:"match_requests" json:"match_requests"`
	TokenHash      string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"-"`
	UpdatedAt      time.Time `bson:"updated_at" json:"-"`
}

// Normalize fills in the defaults for fields older documents may lack.
func (u *User) Normalize() {
	if u.Timezone == "" {
		u.Timezone = DefaultTimezone
	}
	if u.Friends == nil {
		u.Friends = []string{}
	}
	if u.FriendRequests == nil {
		u.FriendRequests = []string{}
	}
	if u.MatchRequests == nil {
		u.MatchRequests = []string{}
	}
}

// HasFriend reports whether username is in u's friend set.
func (u *User) HasFriend(username string) bool {
	return contains(u.Friends, username)
}

// HasFriendRequestFrom reports whether username has a pending request to u.
func (u *User) HasFriendRequestFrom(username string) bool {
	return contains(u.FriendRequests, username)
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// UserRegistration is the body of POST /register.
type UserRegistration struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UserProfileUpdate is the body of PUT /users/me/. Nil fields are left alone.
type UserProfileUpdate struct {
	DisplayName *string `json:"display_name"`
	Timezone    *string `json:"timezone"`
}

// UserSummary is the public view of another user.
type UserSummary struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Friendship statuses reported by user search.
const (
	FriendshipFriends         = "friends"
	FriendshipRequestReceived = "request_received"
	FriendshipRequestSent     = "request_sent"
	FriendshipNone            = "not_friends"
)

// UserSearchResult annotates a match with its relation to the searcher.
type UserSearchResult struct {
	Username         string `json:"username"`
	DisplayName      string `json:"display_name"`
	FriendshipStatus string `json:"friendship_status"`
}

// FriendRequest is the body of POST /friends/request.
type FriendRequest struct {
	ToUsername string `json:"to_username" binding:"required"`
}

// FriendRequestResponse is the body of POST /friends/respond.
type FriendRequestResponse struct {
	FromUsername string `json:"from_username" binding:"required"`
	Accept       bool   `json:"accept"`
}

// Token is returned from POST /token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
