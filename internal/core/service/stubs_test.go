package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Asset store
// ---------------------------------------------------------------------------

type stubAssetStore struct {
	mu       sync.Mutex
	uploaded []string // folder/filename
	failOn   string   // filename that triggers an error
}

func (s *stubAssetStore) Upload(_ context.Context, folder string, f ports.Upload) (string, error) {
	if f.Filename == s.failOn {
		return "", errors.New("asset host unavailable")
	}
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	if _, err := io.ReadAll(rc); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploaded = append(s.uploaded, folder+"/"+f.Filename)
	return "https://assets.example.com/" + folder + "/" + f.Filename, nil
}

func upload(name string) ports.Upload {
	return ports.Upload{
		Filename:    name,
		ContentType: "image/png",
		Size:        4,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("data")), nil
		},
	}
}

// ---------------------------------------------------------------------------
// In-memory repositories
// ---------------------------------------------------------------------------

type memStore[T any] struct {
	items   map[string]*T
	order   []string
	nextID  int
	setID   func(*T, string)
	missErr error
}

func newMemStore[T any](setID func(*T, string), missErr error) *memStore[T] {
	return &memStore[T]{items: make(map[string]*T), setID: setID, missErr: missErr}
}

func (m *memStore[T]) create(v *T) *T {
	m.nextID++
	id := fmt.Sprintf("id-%d", m.nextID)
	clone := *v
	m.setID(&clone, id)
	m.items[id] = &clone
	m.order = append(m.order, id)
	out := clone
	return &out
}

func (m *memStore[T]) find(id string) (*T, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, m.missErr
	}
	clone := *v
	return &clone, nil
}

func (m *memStore[T]) replace(id string, v *T) (*T, error) {
	if _, ok := m.items[id]; !ok {
		return nil, m.missErr
	}
	clone := *v
	m.items[id] = &clone
	out := clone
	return &out, nil
}

func (m *memStore[T]) remove(id string) error {
	if _, ok := m.items[id]; !ok {
		return m.missErr
	}
	delete(m.items, id)
	return nil
}

// list returns items newest first.
func (m *memStore[T]) list() []*T {
	out := make([]*T, 0, len(m.items))
	for i := len(m.order) - 1; i >= 0; i-- {
		if v, ok := m.items[m.order[i]]; ok {
			clone := *v
			out = append(out, &clone)
		}
	}
	return out
}

type stubAboutRepo struct{ *memStore[domain.About] }

func newStubAboutRepo() *stubAboutRepo {
	return &stubAboutRepo{newMemStore(func(a *domain.About, id string) { a.ID = id }, domain.ErrAboutNotFound)}
}

func (r *stubAboutRepo) List(context.Context) ([]*domain.About, error) { return r.list(), nil }
func (r *stubAboutRepo) FindByID(_ context.Context, id string) (*domain.About, error) {
	return r.find(id)
}
func (r *stubAboutRepo) Create(_ context.Context, a *domain.About) (*domain.About, error) {
	return r.create(a), nil
}
func (r *stubAboutRepo) Update(_ context.Context, a *domain.About) (*domain.About, error) {
	return r.replace(a.ID, a)
}
func (r *stubAboutRepo) Delete(_ context.Context, id string) error { return r.remove(id) }

type stubSkillRepo struct{ *memStore[domain.Skill] }

func newStubSkillRepo() *stubSkillRepo {
	return &stubSkillRepo{newMemStore(func(s *domain.Skill, id string) { s.ID = id }, domain.ErrSkillNotFound)}
}

func (r *stubSkillRepo) List(context.Context) ([]*domain.Skill, error) { return r.list(), nil }
func (r *stubSkillRepo) FindByID(_ context.Context, id string) (*domain.Skill, error) {
	return r.find(id)
}
func (r *stubSkillRepo) Create(_ context.Context, s *domain.Skill) (*domain.Skill, error) {
	return r.create(s), nil
}
func (r *stubSkillRepo) Update(_ context.Context, s *domain.Skill) (*domain.Skill, error) {
	return r.replace(s.ID, s)
}
func (r *stubSkillRepo) Delete(_ context.Context, id string) error { return r.remove(id) }

type stubProductRepo struct{ *memStore[domain.Product] }

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{newMemStore(func(p *domain.Product, id string) { p.ID = id }, domain.ErrProductNotFound)}
}

func (r *stubProductRepo) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.list() {
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	return r.find(id)
}
func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return r.create(p), nil
}
func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return r.replace(p.ID, p)
}
func (r *stubProductRepo) Delete(_ context.Context, id string) error { return r.remove(id) }

type stubMessageRepo struct{ *memStore[domain.Message] }

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{newMemStore(func(m *domain.Message, id string) { m.ID = id }, domain.ErrMessageNotFound)}
}

func (r *stubMessageRepo) List(context.Context) ([]*domain.Message, error) { return r.list(), nil }
func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	return r.create(m), nil
}
func (r *stubMessageRepo) SetRead(_ context.Context, id string, read bool) (*domain.Message, error) {
	m, err := r.find(id)
	if err != nil {
		return nil, err
	}
	m.Read = read
	return r.replace(id, m)
}
func (r *stubMessageRepo) Delete(_ context.Context, id string) error { return r.remove(id) }

type stubAnalyticsRepo struct {
	doc *domain.Analytics
	err error
}

func (r *stubAnalyticsRepo) ensure() *domain.Analytics {
	if r.doc == nil {
		r.doc = &domain.Analytics{ID: "analytics"}
	}
	return r.doc
}

func (r *stubAnalyticsRepo) Get(context.Context) (*domain.Analytics, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *r.ensure()
	return &clone, nil
}

func (r *stubAnalyticsRepo) Increment(context.Context) (*domain.Analytics, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.ensure().Visits++
	clone := *r.doc
	return &clone, nil
}

func (r *stubAnalyticsRepo) SetVisits(_ context.Context, visits int64) (*domain.Analytics, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.ensure().Visits = visits
	clone := *r.doc
	return &clone, nil
}
