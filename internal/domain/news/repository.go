package news

import "context"

// Repository describes news catalog reads from use cases.
type Repository interface {
	List(ctx context.Context) ([]Article, error)
}
