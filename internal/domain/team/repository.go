package team

import "context"

// Repository describes team reads from use cases.
type Repository interface {
	// ListBySport returns teams of sportName in catalog order. The sport name
	// is matched case-insensitively; unknown sports yield an empty slice.
	ListBySport(ctx context.Context, sportName string) ([]Team, error)
}
