package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/domain"
	"taskhub/pkg/apierrors"
	"taskhub/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	userID     = "6f1c2a4e-3b7d-4c1e-9a0b-2d5e8f7a1c3b"
	taskID     = "0b7e3c1c-8d7e-4c55-9a55-1f2d8d5d0e0a"
	categoryID = "9d2f4b6a-1c3e-4a5b-8d7f-0e1a2b3c4d5e"
	noteID     = "c4d5e6f7-a8b9-4c0d-9e1f-2a3b4c5d6e7f"
)

var caller = domain.User{ID: userID, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", IsActive: true}

// newRouter mounts handler behind a stand-in for the auth gate that injects
// user when it is non-nil.
func newRouter(method, path string, handler gin.HandlerFunc, user *domain.User) *gin.Engine {
	router := gin.New()
	router.Handle(method, path, middleware.LanguageMiddleware(), func(c *gin.Context) {
		if user != nil {
			middleware.SetCurrentUser(c, *user)
		}
		c.Next()
	}, handler)
	return router
}

func doJSON(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		switch value := body.(type) {
		case string:
			payload.WriteString(value)
		default:
			_ = json.NewEncoder(&payload).Encode(value)
		}
	}

	req := httptest.NewRequest(method, target, &payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.JsonErr {
	t.Helper()

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func ptr[T any](v T) *T {
	return &v
}

