// Package facilities aggregates the three facility collections (aquatic
// installations, ice rinks, slides) behind a single query surface.
package facilities

import (
	"context"
	"slices"
	"sort"
	"strings"

	"installations_api/internal/models"
	"installations_api/internal/serializer"
	"installations_api/internal/storage"
)

// Repository is the read side of storage used by Service.
type Repository interface {
	AquaticFacilities(ctx context.Context, f storage.Filter) ([]models.AquaticFacility, error)
	IceRinks(ctx context.Context, f storage.Filter) ([]models.IceRink, error)
	Slides(ctx context.Context, f storage.Filter) ([]models.Slide, error)
}

// Facilities is the uniform triple returned by every query.
type Facilities struct {
	Aquatic []models.AquaticFacility
	Rinks   []models.IceRink
	Slides  []models.Slide
}

// Groups serializes the triple into the response envelope.
func (f Facilities) Groups() serializer.Groups {
	return serializer.NewGroups(f.Aquatic, f.Rinks, f.Slides)
}

// Names returns every facility name, all kinds mixed, sorted ascending.
func (f Facilities) Names() []string {
	names := make([]string, 0, len(f.Aquatic)+len(f.Rinks)+len(f.Slides))
	for _, a := range f.Aquatic {
		names = append(names, a.Name)
	}
	for _, r := range f.Rinks {
		names = append(names, r.Name)
	}
	for _, s := range f.Slides {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) fetch(ctx context.Context, common, rinks storage.Filter) (Facilities, error) {
	var (
		out Facilities
		err error
	)
	if out.Aquatic, err = s.repo.AquaticFacilities(ctx, common); err != nil {
		return Facilities{}, err
	}
	if out.Rinks, err = s.repo.IceRinks(ctx, rinks); err != nil {
		return Facilities{}, err
	}
	if out.Slides, err = s.repo.Slides(ctx, common); err != nil {
		return Facilities{}, err
	}
	return out, nil
}

// List returns every facility, or only those whose borough is named exactly
// borough when it is non-nil. An unknown borough yields empty collections.
func (s *Service) List(ctx context.Context, borough *string) (Facilities, error) {
	f := storage.Filter{BoroughName: borough}
	return s.fetch(ctx, f, f)
}

// SearchByName filters each kind on its own name. A nil name returns
// everything.
func (s *Service) SearchByName(ctx context.Context, name *string) (Facilities, error) {
	f := storage.Filter{Name: name}
	return s.fetch(ctx, f, f)
}

// UpdatedIn returns the facilities updated during year. Aquatic facilities
// and slides match when their borough's date_maj starts with year; ice rinks
// match when their own date_heure contains year anywhere. Each collection is
// stable-sorted by name.
func (s *Service) UpdatedIn(ctx context.Context, year string) (Facilities, error) {
	out, err := s.fetch(ctx,
		storage.Filter{BoroughUpdatedPrefix: &year},
		storage.Filter{DateHeureContains: &year},
	)
	if err != nil {
		return Facilities{}, err
	}
	slices.SortStableFunc(out.Aquatic, func(a, b models.AquaticFacility) int { return strings.Compare(a.Name, b.Name) })
	slices.SortStableFunc(out.Rinks, func(a, b models.IceRink) int { return strings.Compare(a.Name, b.Name) })
	slices.SortStableFunc(out.Slides, func(a, b models.Slide) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}
