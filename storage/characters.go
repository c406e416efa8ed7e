package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"characters_back/catalog"
)

// CharacterStore is the gorm implementation of catalog.CharacterRepository.
type CharacterStore struct {
	db *gorm.DB
}

func NewCharacterStore(db *gorm.DB) *CharacterStore {
	return &CharacterStore{db: db}
}

func (s *CharacterStore) Save(ctx context.Context, c *catalog.Character) error {
	if c == nil {
		return errors.New("storage: nil character")
	}
	db := s.db.WithContext(ctx)
	if c.ID == 0 {
		if err := db.Create(c).Error; err != nil {
			return fmt.Errorf("storage: create character: %w", err)
		}
		return nil
	}
	if err := db.Save(c).Error; err != nil {
		return fmt.Errorf("storage: save character %d: %w", c.ID, err)
	}
	return nil
}

func (s *CharacterStore) FindByID(ctx context.Context, id uint64) (*catalog.Character, error) {
	var c catalog.Character
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("storage: character %d: %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("storage: load character %d: %w", id, err)
	}
	return &c, nil
}

func (s *CharacterStore) FindAll(ctx context.Context) ([]catalog.Character, error) {
	return s.find(s.db.WithContext(ctx))
}

func (s *CharacterStore) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&catalog.Character{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("storage: check character %d: %w", id, err)
	}
	return count > 0, nil
}

func (s *CharacterStore) DeleteByID(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&catalog.Character{}, id)
	if res.Error != nil {
		return fmt.Errorf("storage: delete character %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("storage: character %d: %w", id, catalog.ErrNotFound)
	}
	return nil
}

func (s *CharacterStore) Count(ctx context.Context) (int64, error) {
	return s.count(s.db.WithContext(ctx))
}

func (s *CharacterStore) FindBySpeciesIgnoreCase(ctx context.Context, species string) ([]catalog.Character, error) {
	return s.find(s.equalFold(ctx, "species", species))
}

func (s *CharacterStore) FindByStatusIgnoreCase(ctx context.Context, status string) ([]catalog.Character, error) {
	return s.find(s.equalFold(ctx, "status", status))
}

func (s *CharacterStore) FindByGenderIgnoreCase(ctx context.Context, gender string) ([]catalog.Character, error) {
	return s.find(s.equalFold(ctx, "gender", gender))
}

func (s *CharacterStore) FindByOriginIgnoreCase(ctx context.Context, origin string) ([]catalog.Character, error) {
	return s.find(s.equalFold(ctx, "origin", origin))
}

// FindByNameContainingIgnoreCase matches keyword literally; LIKE wildcards in
// the keyword are escaped.
func (s *CharacterStore) FindByNameContainingIgnoreCase(ctx context.Context, keyword string) ([]catalog.Character, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	query := s.db.WithContext(ctx).Where("LOWER(name) LIKE LOWER(?) ESCAPE '!'", pattern)
	return s.find(query)
}

func (s *CharacterStore) CountBySpeciesIgnoreCase(ctx context.Context, species string) (int64, error) {
	return s.count(s.equalFold(ctx, "species", species))
}

func (s *CharacterStore) CountByStatusIgnoreCase(ctx context.Context, status string) (int64, error) {
	return s.count(s.equalFold(ctx, "status", status))
}

func (s *CharacterStore) CountByGenderIgnoreCase(ctx context.Context, gender string) (int64, error) {
	return s.count(s.equalFold(ctx, "gender", gender))
}

func (s *CharacterStore) FindDistinctSpecies(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "species")
}

func (s *CharacterStore) FindDistinctOrigins(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "origin")
}

// equalFold builds a case-insensitive equality filter. column is always one
// of the fixed names above, never user input.
func (s *CharacterStore) equalFold(ctx context.Context, column, value string) *gorm.DB {
	return s.db.WithContext(ctx).Where("LOWER("+column+") = LOWER(?)", value)
}

func (s *CharacterStore) find(query *gorm.DB) ([]catalog.Character, error) {
	var list []catalog.Character
	if err := query.Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("storage: list characters: %w", err)
	}
	return list, nil
}

func (s *CharacterStore) count(query *gorm.DB) (int64, error) {
	var n int64
	if err := query.Model(&catalog.Character{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("storage: count characters: %w", err)
	}
	return n, nil
}

func (s *CharacterStore) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := s.db.WithContext(ctx).
		Model(&catalog.Character{}).
		Distinct(column).
		Order(column+" asc").
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("storage: distinct %s: %w", column, err)
	}
	return values, nil
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return replacer.Replace(value)
}
