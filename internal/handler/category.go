package handler

import (
	"net/http"

	"github.com/msomdec/flashdeck/internal/service"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// HandleList returns all categories.
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCategoryDTOs(h.categories.List()))
}

// HandleGet returns a single category by ID.
func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryDTO(category))
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	category, err := h.categories.Add(service.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryDTO(category))
}

// HandleUpdate applies a partial update to a category.
func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	category, err := h.categories.Update(r.PathValue("id"), service.CategoryPatch{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryDTO(category))
}

// HandleDelete removes a category together with its decks and their cards.
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
