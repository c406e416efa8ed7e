package catalog

//go:generate mockgen -destination=mock/repository.go -package=mockcatalog -source=repository.go

import "context"

// CharacterRepository is the record store behind the character service.
// Lookups ending in IgnoreCase compare without regard to case. Missing
// records are reported as ErrNotFound.
type CharacterRepository interface {
	// Save inserts c when c.ID is zero and replaces every field otherwise.
	// The assigned ID is written back into c.
	Save(ctx context.Context, c *Character) error
	FindByID(ctx context.Context, id uint64) (*Character, error)
	FindAll(ctx context.Context) ([]Character, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)

	FindBySpeciesIgnoreCase(ctx context.Context, species string) ([]Character, error)
	FindByStatusIgnoreCase(ctx context.Context, status string) ([]Character, error)
	FindByGenderIgnoreCase(ctx context.Context, gender string) ([]Character, error)
	FindByOriginIgnoreCase(ctx context.Context, origin string) ([]Character, error)
	FindByNameContainingIgnoreCase(ctx context.Context, keyword string) ([]Character, error)

	CountBySpeciesIgnoreCase(ctx context.Context, species string) (int64, error)
	CountByStatusIgnoreCase(ctx context.Context, status string) (int64, error)
	CountByGenderIgnoreCase(ctx context.Context, gender string) (int64, error)

	FindDistinctSpecies(ctx context.Context) ([]string, error)
	FindDistinctOrigins(ctx context.Context) ([]string, error)
}

// FavoriteRepository stores favorite snapshots. There is no update.
type FavoriteRepository interface {
	// Save inserts f and writes the assigned ID back into it.
	Save(ctx context.Context, f *Favorite) error
	FindAll(ctx context.Context) ([]Favorite, error)
	DeleteByID(ctx context.Context, id uint64) error
}
