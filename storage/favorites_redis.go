package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"characters_back/catalog"
)

const (
	favoriteKeyPrefix = "favorite:"
	favoriteIndexKey  = "favorites"
	favoriteSeqKey    = "favorites:seq"
)

// favoriteData is the JSON document stored under favorite:{id}.
type favoriteData struct {
	ID          uint64  `json:"id"`
	CharacterID uint64  `json:"charakter_id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Image       string  `json:"image"`
	Species     *string `json:"species,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Origin      *string `json:"origin,omitempty"`
}

// RedisFavoriteStore keeps favorites in Redis. IDs come from an INCR counter
// and a sorted set scored by ID keeps listing order stable.
type RedisFavoriteStore struct {
	client redis.UniversalClient
}

func NewRedisFavoriteStore(client redis.UniversalClient) *RedisFavoriteStore {
	return &RedisFavoriteStore{client: client}
}

func favoriteKey(id uint64) string {
	return favoriteKeyPrefix + strconv.FormatUint(id, 10)
}

func (s *RedisFavoriteStore) Save(ctx context.Context, f *catalog.Favorite) error {
	if f == nil {
		return errors.New("storage: nil favorite")
	}

	next, err := s.client.Incr(ctx, favoriteSeqKey).Result()
	if err != nil {
		return fmt.Errorf("storage: allocate favorite id: %w", err)
	}
	f.ID = uint64(next)

	payload, err := json.Marshal(toFavoriteData(f))
	if err != nil {
		return fmt.Errorf("storage: encode favorite: %w", err)
	}

	if err := s.client.Set(ctx, favoriteKey(f.ID), string(payload), 0).Err(); err != nil {
		return fmt.Errorf("storage: store favorite %d: %w", f.ID, err)
	}
	member := redis.Z{Score: float64(f.ID), Member: strconv.FormatUint(f.ID, 10)}
	if err := s.client.ZAdd(ctx, favoriteIndexKey, member).Err(); err != nil {
		return fmt.Errorf("storage: index favorite %d: %w", f.ID, err)
	}
	return nil
}

func (s *RedisFavoriteStore) FindAll(ctx context.Context) ([]catalog.Favorite, error) {
	ids, err := s.client.ZRange(ctx, favoriteIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: list favorite ids: %w", err)
	}
	if len(ids) == 0 {
		return []catalog.Favorite{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = favoriteKeyPrefix + id
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: load favorites: %w", err)
	}

	list := make([]catalog.Favorite, 0, len(values))
	for i, raw := range values {
		str, ok := raw.(string)
		if !ok {
			// index entry without a document
			continue
		}
		var data favoriteData
		if err := json.Unmarshal([]byte(str), &data); err != nil {
			return nil, fmt.Errorf("storage: decode %s: %w", keys[i], err)
		}
		list = append(list, data.toFavorite())
	}
	return list, nil
}

func (s *RedisFavoriteStore) DeleteByID(ctx context.Context, id uint64) error {
	removed, err := s.client.Del(ctx, favoriteKey(id)).Result()
	if err != nil {
		return fmt.Errorf("storage: delete favorite %d: %w", id, err)
	}
	if err := s.client.ZRem(ctx, favoriteIndexKey, strconv.FormatUint(id, 10)).Err(); err != nil {
		return fmt.Errorf("storage: unindex favorite %d: %w", id, err)
	}
	if removed == 0 {
		return fmt.Errorf("storage: favorite %d: %w", id, catalog.ErrNotFound)
	}
	return nil
}

func toFavoriteData(f *catalog.Favorite) favoriteData {
	return favoriteData{
		ID:          f.ID,
		CharacterID: f.CharacterID,
		Name:        f.Name,
		Status:      f.Status,
		Image:       f.Image,
		Species:     f.Species,
		Gender:      f.Gender,
		Origin:      f.Origin,
	}
}

func (d favoriteData) toFavorite() catalog.Favorite {
	return catalog.Favorite{
		ID:          d.ID,
		CharacterID: d.CharacterID,
		Name:        d.Name,
		Status:      d.Status,
		Image:       d.Image,
		Species:     d.Species,
		Gender:      d.Gender,
		Origin:      d.Origin,
	}
}
