package book

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

// GetAll handles GET /books
func (h *HTTPHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetAll(r.Context())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, ToResults(books), map[string]interface{}{"total": len(books)})
}

// GetByID handles GET /books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id must be a positive integer", nil)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, ToResult(b), nil)
}

// GetByCategory handles GET /books/category/{categoryId}
func (h *HTTPHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := httpx.PathID(r, "categoryId")
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Category id must be a positive integer", nil)
		return
	}

	books, err := h.service.GetByCategory(r.Context(), categoryID)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, ToResults(books), map[string]interface{}{"total": len(books)})
}

// Add handles POST /books
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in BookAdd
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(in); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", details)
		return
	}

	b, err := h.service.Add(r.Context(), FromAdd(in))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, ToResult(b), nil)
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id must be a positive integer", nil)
		return
	}

	var in BookEdit
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(in); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", details)
		return
	}
	if in.ID != id {
		httpx.JSONError(w, r, http.StatusBadRequest, "ID_MISMATCH", "Path id does not match body id", nil)
		return
	}

	b := FromEdit(in)
	if err := h.service.Update(r.Context(), b); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, ToResult(b), nil)
}

// Remove handles DELETE /books/{id}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id must be a positive integer", nil)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.InternalError(w, r)
		return
	}

	removed, err := h.service.Remove(r.Context(), b)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	if !removed {
		httpx.JSONError(w, r, http.StatusBadRequest, "REMOVE_REJECTED", "Book could not be removed", nil)
		return
	}
	httpx.JSONSuccess(w, r, nil, nil)
}

// Search handles GET /books/search/{text}
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.Search(r.Context(), r.PathValue("text"))
	h.writeSearchResult(w, r, books, err)
}

// SearchWithCategory handles GET /books/search-book-with-category/{text}
func (h *HTTPHandler) SearchWithCategory(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.SearchWithCategory(r.Context(), r.PathValue("text"))
	h.writeSearchResult(w, r, books, err)
}

func (h *HTTPHandler) writeSearchResult(w http.ResponseWriter, r *http.Request, books []entity.Book, err error) {
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	if len(books) == 0 {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No book matches the search text", nil)
		return
	}
	httpx.JSONSuccess(w, r, ToResults(books), map[string]interface{}{"total": len(books)})
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, entity.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	default:
		httpx.InternalError(w, r)
	}
}
