package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lanchepoint/pos-api/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate a user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{User: user, Token: token})
}

// MeHandler godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResult
// @Failure 401 {string} string "Unauthorized"
// @Router /api/auth/me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	id := userIDFromRequest(r)
	user, err := userRepo.GetByID(id)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, MeResult{User: user})
}

// userIDFromRequest re-reads the token claims rather than importing the
// router package, which would cycle.
func userIDFromRequest(r *http.Request) int {
	_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
	if err != nil {
		return 0
	}
	if sub, ok := claims["sub"].(float64); ok {
		return int(sub)
	}
	return 0
}
