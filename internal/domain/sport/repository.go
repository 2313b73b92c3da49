package sport

import "context"

// Repository describes sport catalog reads from use cases.
type Repository interface {
	List(ctx context.Context) ([]Sport, error)
}
