package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"moodvenue/internal/config"
	"moodvenue/internal/models"
)

type AuthHandler struct {
	cfg *config.Config
	v   *validator.Validate
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		v:   validator.New(),
	}
}

// Login exchanges the admin credentials for a bearer token.
// @Tags Admin
// @Summary Admin login
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Admin credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	// an empty hash disables login entirely
	if h.cfg.AdminPasswordHash == "" ||
		subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUsername)) != 1 ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		log.Warn().Str("username", req.Username).Msg("admin login rejected")
		writeJSONErrorResponse(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		return
	}

	expiresIn := h.cfg.JWTExpiresInSeconds
	if expiresIn <= 0 {
		expiresIn = 86400
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": h.cfg.AdminUsername,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(expiresIn) * time.Second).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.SecretKey))
	if err != nil {
		log.Error().Err(err).Msg("sign admin token")
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to login")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}
