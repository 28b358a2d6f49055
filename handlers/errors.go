package handlers

import (
	"errors"
	"net/http"

	"schedulematch/services/friends"
	"schedulematch/services/match"
	"schedulematch/services/overlap"
	"schedulematch/services/schedule"
	"schedulematch/services/user"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{user.ErrMissingFields, http.StatusBadRequest},
	{user.ErrInvalidUsername, http.StatusBadRequest},
	{user.ErrUsernameTaken, http.StatusBadRequest},
	{user.ErrInvalidDisplayName, http.StatusBadRequest},
	{user.ErrInvalidCredentials, http.StatusUnauthorized},
	{user.ErrUserNotFound, http.StatusNotFound},

	{friends.ErrSelfRequest, http.StatusBadRequest},
	{friends.ErrAlreadyFriends, http.StatusBadRequest},
	{friends.ErrUserNotFound, http.StatusNotFound},
	{friends.ErrNoFriendRequest, http.StatusNotFound},
	{friends.ErrNotFriends, http.StatusNotFound},

	{schedule.ErrInvalidDate, http.StatusBadRequest},
	{schedule.ErrInvalidRange, http.StatusBadRequest},
	{schedule.ErrScheduleNotFound, http.StatusNotFound},

	{match.ErrNotFriends, http.StatusBadRequest},
	{match.ErrMatchExists, http.StatusBadRequest},
	{match.ErrInvalidDate, http.StatusBadRequest},
	{match.ErrMatchNotFound, http.StatusNotFound},
	{match.ErrUserNotFound, http.StatusNotFound},
	{match.ErrNoActiveMatch, http.StatusForbidden},
}

// statusFor maps a service error onto an HTTP status. Anything unrecognised is a 500.
func statusFor(err error) int {
	var pwErr user.PasswordError
	if errors.As(err, &pwErr) {
		return http.StatusBadRequest
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as a {"detail": ...} body. invalidTimezone is the status
// used for overlap.ErrInvalidTimezone, which means bad input on a profile update but
// corrupt stored data on an overlap query.
func respondError(c *gin.Context, err error, invalidTimezone int) {
	status := statusFor(err)
	if errors.Is(err, overlap.ErrInvalidTimezone) {
		status = invalidTimezone
	}
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	utils.JSONError(c, status, err.Error())
}
