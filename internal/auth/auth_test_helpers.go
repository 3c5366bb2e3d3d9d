package auth

import (
	"fmt"
	"net/http"
	"testing"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/testutil"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	tokens *TokenService,
	username string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewHandler(db, tokens, NewInMemoryBlacklistStore(), CookieOptions{})
	rec, resp, err := testutil.SimulateAPICall(handler.Login, "/login", http.MethodPost, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	data, _ := resp["data"].(map[string]interface{})
	token, ok := data["accessToken"].(string)
	if !ok {
		return "", fmt.Errorf("login Failed: no accessToken in response: %s", rec.Body.String())
	}
	return token, nil
}
