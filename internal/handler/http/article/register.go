package article

import (
	"net/http"

	"articles-api/internal/pkg/validation"
	artUC "articles-api/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// The /articles/?id= and /articles/nickname forms are kept for existing clients.
func Register(mux *http.ServeMux, svc *artUC.Service, v *validation.Validator) {
	mux.Handle("GET    /articles", ListHandler{svc})
	mux.Handle("GET    /articles/{$}", GetHandler{svc})
	mux.Handle("GET    /articles/{id}", GetHandler{svc})
	mux.Handle("GET    /articles/search/{field}", SearchHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{Svc: svc, Validator: v})
	mux.Handle("PUT    /articles/nickname", UpdateNicknameQueryHandler{Svc: svc, Validator: v})
	mux.Handle("PUT    /articles/{id}", UpdateHandler{Svc: svc, Validator: v})
	mux.Handle("DELETE /articles/{$}", DeleteHandler{svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc})
}
