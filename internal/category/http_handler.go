package category

import (
	"errors"
	"net/http"

	"bookstore/internal/entity"
	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// GetAll handles GET /categories
func (h *HTTPHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, ToResults(categories), nil)
}

// GetByID handles GET /categories/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Category id must be a positive integer", nil)
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, ToResult(c), nil)
}

// Add handles POST /categories
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in CategoryAdd
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(in); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category", details)
		return
	}

	c, err := h.service.Add(r.Context(), FromAdd(in))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, ToResult(c), nil)
}

// Update handles PUT /categories/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Category id must be a positive integer", nil)
		return
	}

	var in CategoryEdit
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(in); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category", details)
		return
	}
	if in.ID != id {
		httpx.JSONError(w, r, http.StatusBadRequest, "ID_MISMATCH", "Path id does not match body id", nil)
		return
	}

	c := FromEdit(in)
	if err := h.service.Update(r.Context(), c); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, ToResult(c), nil)
}

// Remove handles DELETE /categories/{id}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Category id must be a positive integer", nil)
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
			return
		}
		httpx.InternalError(w, r)
		return
	}

	removed, err := h.service.Remove(r.Context(), c)
	if err != nil && !errors.Is(err, entity.ErrOperationRejected) {
		httpx.InternalError(w, r)
		return
	}
	if !removed {
		msg := "Category could not be removed"
		if err != nil {
			msg = "Category is still referenced by books"
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "REMOVE_REJECTED", msg, nil)
		return
	}
	httpx.JSONSuccess(w, r, nil, nil)
}

// Search handles GET /categories/search/{text}
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Search(r.Context(), r.PathValue("text"))
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	if len(categories) == 0 {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No category matches the search text", nil)
		return
	}
	httpx.JSONSuccess(w, r, ToResults(categories), nil)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, entity.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
	default:
		httpx.InternalError(w, r)
	}
}
