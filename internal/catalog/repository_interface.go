package catalog

import "context"

type Repository interface {
	Load(ctx context.Context) (int, error)
	Partners(ctx context.Context) ([]PartnerCount, error)
	ByPartner(ctx context.Context, partner string) ([]Gym, error)
	Nearby(ctx context.Context, lat, lon float64, partner string, limit int) ([]GymWithDistance, error)
	ByID(ctx context.Context, id int) (*Gym, error)
	Add(ctx context.Context, g Gym) (*Gym, error)
	Delete(ctx context.Context, id int) error
	ReplaceAll(ctx context.Context, gyms []Gym) (int, error)
	Count(ctx context.Context) int
}
