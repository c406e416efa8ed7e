package catalog

import "context"

// FavoriteService manages favorite snapshots. A favorite is an independent
// copy: it is never checked against, or updated from, its source character.
type FavoriteService struct {
	repo     FavoriteRepository
	recorder Recorder
}

func NewFavoriteService(repo FavoriteRepository, opts ...Option) *FavoriteService {
	cfg := buildOptions(opts)
	return &FavoriteService{repo: repo, recorder: cfg.recorder}
}

func (s *FavoriteService) List(ctx context.Context) ([]FavoriteDTO, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, Internal(err, "failed to list favorites")
	}
	return ToFavoriteDTOList(list), nil
}

// Create stores a new snapshot. A client-supplied ID is discarded so the store
// always assigns a fresh one.
func (s *FavoriteService) Create(ctx context.Context, dto *FavoriteDTO) (*FavoriteDTO, error) {
	if dto == nil {
		return nil, InvalidData("favorite must not be empty")
	}
	favorite := FromFavoriteDTO(dto)
	favorite.ID = 0
	if err := s.repo.Save(ctx, favorite); err != nil {
		return nil, Internal(err, "failed to save favorite")
	}
	s.recorder.RecordWrite(ResourceFavorite, "create")
	return ToFavoriteDTO(favorite), nil
}

func (s *FavoriteService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return wrapStoreErr(err, ResourceFavorite, id, "delete favorite")
	}
	s.recorder.RecordWrite(ResourceFavorite, "delete")
	return nil
}
