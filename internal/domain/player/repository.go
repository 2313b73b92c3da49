package player

import "context"

// Repository describes player reads from use cases.
type Repository interface {
	// ListByTeam returns players of the team with the exact name teamName.
	// Unknown teams yield an empty slice, not an error.
	ListByTeam(ctx context.Context, teamName string) ([]Player, error)
}
