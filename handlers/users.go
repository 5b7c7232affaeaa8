package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"todo-api/apperr"
	"todo-api/middleware"
	"todo-api/models"
	"todo-api/password"
	"todo-api/store"
	"todo-api/token"
)

type UserHandler struct {
	Users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the user, issues a first auth token, and returns the
// sanitized user with the token in the x-auth header.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	json.NewDecoder(r.Body).Decode(&req)
	req.Email = strings.TrimSpace(req.Email)

	if verr := models.ValidateCredentials(req.Email, req.Password); verr != nil {
		respondErr(w, verr)
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		internalError(w)
		return
	}

	user := models.User{Email: req.Email, Password: hash}
	err = h.Users.Create(r.Context(), &user)
	if errors.Is(err, store.ErrDuplicateEmail) {
		respondErr(w, apperr.NewDuplicate("E11000 duplicate key error: email already exists"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.issueToken(w, r, &user); err != nil {
		internalError(w)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Login verifies credentials and appends a fresh token to the user's
// collection. Any failure is a bare 400 with no auth header.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	json.NewDecoder(r.Body).Decode(&req)

	user, err := h.Users.FindByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if !password.Verify(user.Password, req.Password) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.issueToken(w, r, user); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Me returns the authenticated user. RequireAuth has already resolved the
// token, so a missing context user means broken wiring.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		internalError(w)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Logout removes exactly the presented token from the user's collection.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		internalError(w)
		return
	}

	tokenStr := r.Header.Get(middleware.AuthHeader)
	if err := h.Users.RemoveToken(r.Context(), user.ID, tokenStr); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) issueToken(w http.ResponseWriter, r *http.Request, user *models.User) error {
	tok, err := token.New(user.ID)
	if err != nil {
		return err
	}
	entry := models.AuthToken{Access: "auth", Token: tok}
	if err := h.Users.AppendToken(r.Context(), user.ID, entry); err != nil {
		return err
	}
	user.Tokens = append(user.Tokens, entry)
	w.Header().Set(middleware.AuthHeader, tok)
	return nil
}
