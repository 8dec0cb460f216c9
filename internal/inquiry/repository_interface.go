package inquiry

import "context"

type Repository interface {
	Load(ctx context.Context) error
	Append(ctx context.Context, req Request) (*Request, error)
	All(ctx context.Context) ([]Request, error)
	Count(ctx context.Context) int
}
