package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/db"
)

func verifyUserRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/verify-user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeRole(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp["role"]
}

func TestHandleVerifyUser(t *testing.T) {
	t.Run("unknown email is created with the default role", func(t *testing.T) {
		fake := newFakeDB()
		s := newTestServer(t, fake)

		rec := httptest.NewRecorder()
		s.handleVerifyUser(rec, verifyUserRequest(`{"email":"new@example.com","name":"New User"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, db.RoleUser, decodeRole(t, rec))

		created, err := fake.GetUserByEmail(context.Background(), "new@example.com")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, db.RoleUser, created.Role)
	})

	t.Run("existing user returns stored role", func(t *testing.T) {
		fake := newFakeDB()
		fake.addUser("admin@example.com", "Admin", db.RoleAdmin)
		s := newTestServer(t, fake)

		rec := httptest.NewRecorder()
		s.handleVerifyUser(rec, verifyUserRequest(`{"email":"admin@example.com"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, db.RoleAdmin, decodeRole(t, rec))
	})

	t.Run("storage outage falls back to the default role", func(t *testing.T) {
		fake := newFakeDB()
		fake.failAll = true
		s := newTestServer(t, fake)

		rec := httptest.NewRecorder()
		s.handleVerifyUser(rec, verifyUserRequest(`{"email":"any@example.com"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, db.RoleUser, decodeRole(t, rec))
	})

	t.Run("missing email", func(t *testing.T) {
		s := newTestServer(t, newFakeDB())
		rec := httptest.NewRecorder()
		s.handleVerifyUser(rec, verifyUserRequest(`{"name":"No Email"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, newFakeDB())
		rec := httptest.NewRecorder()
		s.handleVerifyUser(rec, verifyUserRequest(`{not json`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
