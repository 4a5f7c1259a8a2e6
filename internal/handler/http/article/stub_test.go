package article_test

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/article"
	"articles-api/internal/pkg/validation"
	artUC "articles-api/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

// インメモリ ArticleRepository
type stubRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.Article
	nextID int64
	err    error
}

func newStubRepo() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Article, 0, len(s.data))
	for _, a := range s.data {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.data)), s.err
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, false, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, false, nil
	}
	cp := *a
	return &cp, true, nil
}

func (s *stubRepo) SearchBy(ctx context.Context, f entity.SearchField, v string) ([]*entity.Article, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Article
	for _, a := range all {
		col := map[string]string{
			"author":      a.Author,
			"title":       a.Title,
			"source_name": a.SourceName,
			"nickname":    a.Nickname,
		}[f.Column]
		if strings.Contains(col, v) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, v := range s.data {
		if v.Title == a.Title && v.Author == a.Author {
			return entity.ErrConflict
		}
	}
	a.ID = s.nextID
	s.nextID++
	cp := *a
	s.data[a.ID] = &cp
	return nil
}

func (s *stubRepo) UpdateNickname(_ context.Context, id int64, nickname string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[id]
	if !ok {
		return false, s.err
	}
	a.Nickname = nickname
	return true, s.err
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return false, s.err
	}
	delete(s.data, id)
	return true, s.err
}

// newMux は全ルートを登録した ServeMux を返す
func newMux() (*http.ServeMux, *stubRepo) {
	repo := newStubRepo()
	mux := http.NewServeMux()
	article.Register(mux, &artUC.Service{Repo: repo}, validation.New(validation.DefaultLimits()))
	return mux, repo
}
