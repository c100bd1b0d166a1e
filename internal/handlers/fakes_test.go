package handlers

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"moodvenue/internal/interfaces"
	"moodvenue/internal/models"
)

type fakeVenueRepo struct {
	venues     map[int64]*models.Venue
	nextID     int64
	err        error
	lastFilter interfaces.VenueFilter
}

func newFakeVenueRepo(venues ...*models.Venue) *fakeVenueRepo {
	f := &fakeVenueRepo{venues: map[int64]*models.Venue{}}
	for _, v := range venues {
		_ = f.Create(context.Background(), v)
	}
	return f
}

func (f *fakeVenueRepo) Create(ctx context.Context, v *models.Venue) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	v.ID = f.nextID
	f.venues[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.venues[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return v, nil
}

func (f *fakeVenueRepo) List(ctx context.Context) ([]*models.Venue, error) {
	return f.Search(ctx, interfaces.VenueFilter{})
}

func (f *fakeVenueRepo) Search(ctx context.Context, filter interfaces.VenueFilter) ([]*models.Venue, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.Venue{}
	for _, v := range f.venues {
		if filter.Search != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.RatingStars != nil && v.RatingStars != *filter.RatingStars {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, v *models.Venue) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.venues[v.ID]; !ok {
		return interfaces.ErrNotFound
	}
	f.venues[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.venues[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(f.venues, id)
	return nil
}

type fakePlanRepo struct {
	plans  map[int64]*models.Plan
	nextID int64
	err    error
}

func newFakePlanRepo(plans ...*models.Plan) *fakePlanRepo {
	f := &fakePlanRepo{plans: map[int64]*models.Plan{}}
	for _, p := range plans {
		_ = f.Create(context.Background(), p)
	}
	return f
}

func (f *fakePlanRepo) Create(ctx context.Context, p *models.Plan) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.plans {
		if existing.Name == p.Name {
			return interfaces.ErrConflict
		}
	}
	f.nextID++
	p.ID = f.nextID
	f.plans[p.ID] = p
	return nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.plans[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return p, nil
}

func (f *fakePlanRepo) List(ctx context.Context) ([]*models.Plan, error) {
	return f.Search(ctx, interfaces.PlanFilter{})
}

func (f *fakePlanRepo) Search(ctx context.Context, filter interfaces.PlanFilter) ([]*models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.Plan{}
	for _, p := range f.plans {
		if filter.Theme != "" && p.Theme != filter.Theme {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, p *models.Plan) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.plans[p.ID]; !ok {
		return interfaces.ErrNotFound
	}
	f.plans[p.ID] = p
	return nil
}

func (f *fakePlanRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.plans[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(f.plans, id)
	return nil
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
