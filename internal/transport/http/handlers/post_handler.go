package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/apperr"
	"github.com/inkwell-press/inkwell/internal/service"
	"github.com/inkwell-press/inkwell/internal/transport/http/middleware"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	thumbnail, thumbnailName, err := readFormFile(r, "thumbnail")
	if err != nil {
		respondError(w, r, "create post", apperr.BadRequest("Invalid upload"))
		return
	}

	input := service.CreatePostInput{
		Title:         r.FormValue("title"),
		Category:      r.FormValue("category"),
		Description:   r.FormValue("description"),
		Thumbnail:     thumbnail,
		ThumbnailName: thumbnailName,
	}

	post, err := h.postService.Create(r.Context(), identity.ID, input)
	if err != nil {
		respondError(w, r, "create post", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListAll(r.Context())
	if err != nil {
		respondError(w, r, "list posts", err)
		return
	}

	render.JSON(w, r, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, "get post", apperr.BadRequest("Post unavailable"))
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "get post", err)
		return
	}

	render.JSON(w, r, post)
}

func (h *PostHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		respondError(w, r, "list posts by category", err)
		return
	}

	render.JSON(w, r, posts)
}

func (h *PostHandler) ListByCreator(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, "list posts by creator", apperr.BadRequest("Invalid user ID"))
		return
	}

	posts, err := h.postService.ListByCreator(r.Context(), id)
	if err != nil {
		respondError(w, r, "list posts by creator", err)
		return
	}

	render.JSON(w, r, posts)
}

func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, "edit post", apperr.BadRequest("Post unavailable"))
		return
	}

	thumbnail, thumbnailName, err := readFormFile(r, "thumbnail")
	if err != nil {
		respondError(w, r, "edit post", apperr.BadRequest("Invalid upload"))
		return
	}

	input := service.EditPostInput{
		Title:         r.FormValue("title"),
		Category:      r.FormValue("category"),
		Description:   r.FormValue("description"),
		Thumbnail:     thumbnail,
		ThumbnailName: thumbnailName,
	}

	post, err := h.postService.Edit(r.Context(), id, input)
	if err != nil {
		respondError(w, r, "edit post", err)
		return
	}

	render.JSON(w, r, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, "delete post", apperr.BadRequest("Post unavailable"))
		return
	}

	if err := h.postService.Delete(r.Context(), id, identity.ID); err != nil {
		respondError(w, r, "delete post", err)
		return
	}

	render.JSON(w, r, fmt.Sprintf("Post %s deleted successfully", id))
}
