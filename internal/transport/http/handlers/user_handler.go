package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/apperr"
	"github.com/inkwell-press/inkwell/internal/service"
	"github.com/inkwell-press/inkwell/internal/transport/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, "register", apperr.BadRequest("Invalid request body"))
		return
	}

	user, err := h.userService.Register(r.Context(), input)
	if err != nil {
		respondError(w, r, "register", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, fmt.Sprintf("New user %s registered", user.Email))
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, "login", apperr.BadRequest("Invalid request body"))
		return
	}

	result, err := h.userService.Login(r.Context(), input)
	if err != nil {
		respondError(w, r, "login", err)
		return
	}

	render.JSON(w, r, result)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, "get profile", apperr.BadRequest("Invalid user ID"))
		return
	}

	user, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		respondError(w, r, "get profile", err)
		return
	}

	render.JSON(w, r, user)
}

func (h *UserHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.userService.ListAuthors(r.Context())
	if err != nil {
		respondError(w, r, "list authors", err)
		return
	}

	render.JSON(w, r, authors)
}

func (h *UserHandler) ChangeAvatar(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	data, filename, err := readFormFile(r, "avatar")
	if err != nil {
		respondError(w, r, "change avatar", apperr.BadRequest("Invalid upload"))
		return
	}

	user, err := h.userService.ChangeAvatar(r.Context(), identity.ID, data, filename)
	if err != nil {
		respondError(w, r, "change avatar", err)
		return
	}

	render.JSON(w, r, user)
}

func (h *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	var input service.EditProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, "edit profile", apperr.BadRequest("Invalid request body"))
		return
	}

	user, err := h.userService.EditProfile(r.Context(), identity.ID, input)
	if err != nil {
		respondError(w, r, "edit profile", err)
		return
	}

	render.JSON(w, r, user)
}
