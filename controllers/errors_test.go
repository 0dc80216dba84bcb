package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dorm-management-api/repositories"
	"dorm-management-api/services"

	"github.com/gin-gonic/gin"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err      error
		code     int
		contains string
	}{
		{&services.ValidationError{Message: "Woreda must be a positive number"}, http.StatusBadRequest, "Woreda must be a positive number"},
		{services.ErrNoteRequired, http.StatusBadRequest, "reason is required"},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{fmt.Errorf("load: %w", services.ErrApplicationNotFound), http.StatusNotFound, "application not found"},
		{services.ErrStudentIDTaken, http.StatusConflict, "already registered"},
		{services.ErrPhaseTwoClosed, http.StatusConflict, "complete Phase 1 first"},
		{services.ErrCannotRemoveOwner, http.StatusForbidden, "cannot remove owner"},
		{&repositories.DataAccessError{Operation: "load", Resource: "applications", Err: errors.New("dial tcp")}, http.StatusInternalServerError, "Unable to load data. Please try again or contact support."},
		{errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, tc.err)
		if w.Code != tc.code || !strings.Contains(w.Body.String(), tc.contains) {
			t.Fatalf("%v: got %d %s", tc.err, w.Code, w.Body.String())
		}
	}
}
