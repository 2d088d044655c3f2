package main

import (
	"context"
	"net/http"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/category"
	"bookstore/internal/config"
	"bookstore/internal/httpx"
	"bookstore/internal/store"
)

// newRouter wires repositories, services and handlers over st and wraps the
// mux in the middleware chain. Background work started here ends with ctx.
func newRouter(ctx context.Context, cfg config.Config, st store.Store) http.Handler {
	bookRepository := book.NewStoreRepo(st)
	categoryRepository := category.NewStoreRepo(st)

	bookService := book.NewService(bookRepository, categoryRepository)
	categoryService := category.NewService(categoryRepository, bookRepository)

	bookHandler := book.NewHTTPHandler(bookService)
	categoryHandler := category.NewHTTPHandler(categoryService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", bookHandler.GetAll)
	router.HandleFunc("POST /books", bookHandler.Add)
	router.HandleFunc("GET /books/{id}", bookHandler.GetByID)
	router.HandleFunc("PUT /books/{id}", bookHandler.Update)
	router.HandleFunc("DELETE /books/{id}", bookHandler.Remove)
	router.HandleFunc("GET /books/category/{categoryId}", bookHandler.GetByCategory)
	router.HandleFunc("GET /books/search/{text}", bookHandler.Search)
	router.HandleFunc("GET /books/search-book-with-category/{text}", bookHandler.SearchWithCategory)

	router.HandleFunc("GET /categories", categoryHandler.GetAll)
	router.HandleFunc("POST /categories", categoryHandler.Add)
	router.HandleFunc("GET /categories/{id}", categoryHandler.GetByID)
	router.HandleFunc("PUT /categories/{id}", categoryHandler.Update)
	router.HandleFunc("DELETE /categories/{id}", categoryHandler.Remove)
	router.HandleFunc("GET /categories/search/{text}", categoryHandler.Search)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxyHeaders)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(false),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
