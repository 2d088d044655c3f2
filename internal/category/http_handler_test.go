package category

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/entity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository, *MockBookLookup) {
	svc, repo, books := newTestService(t)
	return NewHTTPHandler(svc), repo, books
}

func TestHTTPHandler_GetAll(t *testing.T) {
	handler, repo, _ := newTestHandler(t)

	t.Run("empty", func(t *testing.T) {
		repo.EXPECT().GetAll(gomock.Any()).Return([]entity.Category{}, nil)

		w := httptest.NewRecorder()
		handler.GetAll(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		repo.EXPECT().GetAll(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.GetAll(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	handler, repo, _ := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entity.Category{ID: 1, Name: "Fiction"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/categories/1", nil)
		r.SetPathValue("id", "1")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"id":1,"name":"Fiction"}}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entity.Category{}, entity.ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/categories/2", nil)
		r.SetPathValue("id", "2")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/categories/x", nil)
		r.SetPathValue("id", "x")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Add(t *testing.T) {
	handler, repo, _ := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), "Fiction").Return(nil, nil)
		repo.EXPECT().Add(gomock.Any(), entity.Category{Name: "Fiction"}).Return(entity.Category{ID: 1, Name: "Fiction"}, nil)

		w := httptest.NewRecorder()
		handler.Add(w, httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Fiction"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":1`)
	})

	t.Run("invalid shape", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Add(w, httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":""}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("duplicate", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), "Fiction").Return([]entity.Category{{ID: 1, Name: "Fiction"}}, nil)

		w := httptest.NewRecorder()
		handler.Add(w, httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Fiction"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	handler, repo, _ := newTestHandler(t)

	put := func(pathID, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/categories/"+pathID, strings.NewReader(body))
		r.SetPathValue("id", pathID)
		handler.Update(w, r)
		return w
	}

	t.Run("success echoes input", func(t *testing.T) {
		c := entity.Category{ID: 1, Name: "Sci-Fi"}
		repo.EXPECT().FindByName(gomock.Any(), "Sci-Fi").Return(nil, nil)
		repo.EXPECT().Update(gomock.Any(), c).Return(nil)

		w := put("1", `{"id":1,"name":"Sci-Fi"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"id":1,"name":"Sci-Fi"}}`, w.Body.String())
	})

	t.Run("id mismatch", func(t *testing.T) {
		w := put("2", `{"id":1,"name":"Sci-Fi"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("absent id", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), "Ghost").Return(nil, nil)
		repo.EXPECT().Update(gomock.Any(), entity.Category{ID: 99, Name: "Ghost"}).Return(entity.ErrNotFound)

		w := put("99", `{"id":99,"name":"Ghost"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Remove(t *testing.T) {
	handler, repo, books := newTestHandler(t)
	c := entity.Category{ID: 1, Name: "Fiction"}

	del := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/categories/"+id, nil)
		r.SetPathValue("id", id)
		handler.Remove(w, r)
		return w
	}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(c, nil)
		books.EXPECT().GetByCategory(gomock.Any(), int64(1)).Return(nil, nil)
		repo.EXPECT().Remove(gomock.Any(), c).Return(true, nil)

		w := del("1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entity.Category{}, entity.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, del("3").Code)
	})

	t.Run("referenced", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(c, nil)
		books.EXPECT().GetByCategory(gomock.Any(), int64(1)).Return([]entity.Book{{ID: 1, CategoryID: 1}}, nil)

		w := del("1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "referenced")
	})
}

func TestHTTPHandler_Search(t *testing.T) {
	handler, repo, _ := newTestHandler(t)

	search := func(text string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/categories/search/"+text, nil)
		r.SetPathValue("text", text)
		handler.Search(w, r)
		return w
	}

	t.Run("match", func(t *testing.T) {
		repo.EXPECT().Search(gomock.Any(), "fic").Return([]entity.Category{{ID: 1, Name: "Fiction"}}, nil)

		assert.Equal(t, http.StatusOK, search("fic").Code)
	})

	t.Run("no match", func(t *testing.T) {
		repo.EXPECT().Search(gomock.Any(), "zzz").Return([]entity.Category{}, nil)

		w := search("zzz")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No category matches")
	})
}
