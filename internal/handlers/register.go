package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/AlenaMolokova/canadasin/internal/constants"
	"github.com/AlenaMolokova/canadasin/internal/middleware"
	"github.com/AlenaMolokova/canadasin/internal/models"
	"github.com/AlenaMolokova/canadasin/internal/storage"
	"github.com/AlenaMolokova/canadasin/internal/utils"
	"github.com/AlenaMolokova/canadasin/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

type RegisterHandler struct {
	store     models.UserStorage
	secret    string
	passwords validation.PasswordValidator
	counter   UserCounter
}

func NewRegisterHandler(store models.UserStorage, secret string, counter UserCounter) *RegisterHandler {
	return &RegisterHandler{
		store:     store,
		secret:    secret,
		passwords: validation.NewDefaultPasswordValidator(),
		counter:   counter,
	}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode register request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Login == "" || req.Password == "" {
		log.Printf("Empty login or password")
		utils.WriteJSONError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	if !h.passwords.ValidatePassword(req.Password) {
		log.Printf("Invalid password for login %s: must be >=8 chars with letters", req.Login)
		utils.WriteJSONError(w, http.StatusBadRequest, "Password must be at least 8 characters long and contain letters")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for login %s: %v", req.Login, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	userID, err := h.store.CreateUser(r.Context(), req.Login, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrLoginExists) {
			log.Printf("Login %s already exists", req.Login)
			utils.WriteJSONError(w, http.StatusConflict, "Login already exists")
			return
		}
		log.Printf("Failed to create user %s: %v", req.Login, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if h.counter != nil {
		h.counter.IncrementUsersCreated()
	}

	tokenString, err := middleware.IssueToken(h.secret, userID, constants.TokenTTLHours*time.Hour)
	if err != nil {
		log.Printf("Failed to sign token for user %s: %v", req.Login, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	w.WriteHeader(http.StatusOK)
	log.Printf("User %s registered successfully, user_id: %d", req.Login, userID)
}
