package catalog

import (
	"context"
	"fmt"
	"strings"

	"gymhabit/internal/metrics"
	"gymhabit/internal/validation"
)

const (
	DefaultNearbyLimit = 10
	MaxNearbyLimit     = 50
)

type Service interface {
	Partners(ctx context.Context) ([]PartnerCount, error)
	Gyms(ctx context.Context, partner string) ([]Gym, error)
	Nearby(ctx context.Context, q NearbyQuery) ([]GymWithDistance, error)
	GymByID(ctx context.Context, id int) (*Gym, error)
	GymDetail(ctx context.Context, id int) (*GymDetail, error)
	Add(ctx context.Context, req AddGymRequest) (*Gym, error)
	Delete(ctx context.Context, id int) error
	ReplaceAll(ctx context.Context, gyms []Gym) (int, error)
	Count(ctx context.Context) int
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Partners(ctx context.Context) ([]PartnerCount, error) {
	return s.repo.Partners(ctx)
}

func (s *service) Gyms(ctx context.Context, partner string) ([]Gym, error) {
	return s.repo.ByPartner(ctx, partner)
}

// Nearby runs a proximity search. The limit must already be resolved by
// the caller; zero is rejected like any other out-of-range value.
func (s *service) Nearby(ctx context.Context, q NearbyQuery) ([]GymWithDistance, error) {
	if err := validation.Struct(q); err != nil {
		return nil, err
	}

	metrics.RecordNearbySearch()
	return s.repo.Nearby(ctx, q.Latitude, q.Longitude, q.Partner, q.Limit)
}

func (s *service) GymByID(ctx context.Context, id int) (*Gym, error) {
	return s.repo.ByID(ctx, id)
}

// GymDetail recomputes plan pricing and the amenities list on every read.
func (s *service) GymDetail(ctx context.Context, id int) (*GymDetail, error) {
	gym, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GymDetail{
		Gym:               *gym,
		SubscriptionPlans: SubscriptionPlans(gym.SubscriptionAmount),
		Amenities:         gym.AmenitiesList(),
	}, nil
}

func (s *service) Add(ctx context.Context, req AddGymRequest) (*Gym, error) {
	gym := Gym{
		PartnerName:        strings.TrimSpace(req.PartnerName),
		GymName:            strings.TrimSpace(req.GymName),
		Address:            strings.TrimSpace(req.Address),
		Pincode:            strings.TrimSpace(req.Pincode),
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		SubscriptionAmount: req.SubscriptionAmount,
		Amenities:          strings.TrimSpace(req.Amenities),
	}

	if err := validation.Struct(gym); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, gym)
	if err != nil {
		return nil, err
	}
	metrics.RecordCatalogMutation("add", s.repo.Count(ctx))
	return added, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordCatalogMutation("delete", s.repo.Count(ctx))
	return nil
}

// ReplaceAll validates the whole incoming set before touching anything:
// if any record is invalid the stored catalog is left exactly as it was.
func (s *service) ReplaceAll(ctx context.Context, gyms []Gym) (int, error) {
	var combined *validation.Errors
	for i, g := range gyms {
		err := validation.Struct(g)
		if err == nil {
			continue
		}
		ve, ok := validation.AsErrors(err)
		if !ok {
			return 0, err
		}
		if combined == nil {
			combined = &validation.Errors{}
		}
		for _, f := range ve.Fields {
			f.Message = fmt.Sprintf("row %d: %s", i+1, f.Message)
			combined.Fields = append(combined.Fields, f)
		}
	}
	if combined != nil {
		return 0, combined
	}

	count, err := s.repo.ReplaceAll(ctx, gyms)
	if err != nil {
		return 0, err
	}
	metrics.RecordCatalogMutation("replace", count)
	return count, nil
}

func (s *service) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}
