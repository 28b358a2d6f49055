package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"schedulematch/services/match"
	"schedulematch/services/overlap"
	"schedulematch/services/schedule"
	"schedulematch/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{match.ErrNoActiveMatch, http.StatusForbidden},
		{match.ErrInvalidDate, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", match.ErrUserNotFound), http.StatusNotFound},
		{schedule.ErrScheduleNotFound, http.StatusNotFound},
		{user.ErrUsernameTaken, http.StatusBadRequest},
		{user.ErrInvalidCredentials, http.StatusUnauthorized},
		{user.PasswordError{Err: errors.New("too short")}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestRespondError_InvalidTimezone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	err := fmt.Errorf("user a: %w", overlap.ErrInvalidTimezone)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, err, http.StatusUnprocessableEntity)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"detail":"user a: invalid timezone"`)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", nil)
	respondError(c, err, http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
