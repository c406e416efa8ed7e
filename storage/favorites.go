package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"characters_back/catalog"
)

// FavoriteStore is the gorm implementation of catalog.FavoriteRepository.
type FavoriteStore struct {
	db *gorm.DB
}

func NewFavoriteStore(db *gorm.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

func (s *FavoriteStore) Save(ctx context.Context, f *catalog.Favorite) error {
	if f == nil {
		return errors.New("storage: nil favorite")
	}
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("storage: create favorite: %w", err)
	}
	return nil
}

func (s *FavoriteStore) FindAll(ctx context.Context) ([]catalog.Favorite, error) {
	var list []catalog.Favorite
	if err := s.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("storage: list favorites: %w", err)
	}
	return list, nil
}

func (s *FavoriteStore) DeleteByID(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&catalog.Favorite{}, id)
	if res.Error != nil {
		return fmt.Errorf("storage: delete favorite %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("storage: favorite %d: %w", id, catalog.ErrNotFound)
	}
	return nil
}
