//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// signToken issues a bearer token for a test user, the way the external
// identity provider would.
func signToken(t *testing.T, userID string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    testJWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func uniqueUserID() string {
	return "user-" + uuid.New().String()[:8]
}

// doJSON performs an authenticated request with an optional JSON body and
// decodes the JSON response into out (when out is non-nil).
func doJSON(t *testing.T, server string, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, server+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out),
			fmt.Sprintf("%s %s: decoding response body", method, path))
	}
	return resp
}

type taskBody struct {
	ID          int64  `json:"id"`
	Topic       string `json:"topic"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"isCompleted"`
}

type tasksEnvelope struct {
	Tasks []taskBody `json:"tasks"`
}

type topicsEnvelope struct {
	Topics []struct {
		Topic    string `json:"topic"`
		Category string `json:"category"`
	} `json:"topics"`
}

type categoriesEnvelope struct {
	Categories []string `json:"categories"`
}
