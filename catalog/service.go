package catalog

import (
	"context"
	"math/rand/v2"
)

// Recorder observes successful writes. server.Metrics implements it.
type Recorder interface {
	RecordWrite(resource, op string)
}

type noopRecorder struct{}

func (noopRecorder) RecordWrite(string, string) {}

// Option configures a Service or FavoriteService.
type Option func(*options)

type options struct {
	recorder Recorder
	randIntN func(n int) int
}

// WithRecorder reports successful writes to r.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithRandom replaces the index picker used by GetRandom. fn must return a
// value in [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(o *options) {
		if fn != nil {
			o.randIntN = fn
		}
	}
}

func buildOptions(opts []Option) options {
	cfg := options{recorder: noopRecorder{}, randIntN: rand.IntN}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Service answers character reads and performs validated writes.
type Service struct {
	repo     CharacterRepository
	recorder Recorder
	randIntN func(n int) int
}

func NewService(repo CharacterRepository, opts ...Option) *Service {
	cfg := buildOptions(opts)
	return &Service{repo: repo, recorder: cfg.recorder, randIntN: cfg.randIntN}
}

func (s *Service) GetAll(ctx context.Context) ([]CharacterDTO, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, Internal(err, "failed to list characters")
	}
	return ToDTOList(list), nil
}

func (s *Service) GetAllForms(ctx context.Context) ([]CharacterForm, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, Internal(err, "failed to list characters")
	}
	return ToFormDTOList(list), nil
}

func (s *Service) GetByID(ctx context.Context, id uint64) (*CharacterDTO, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(c), nil
}

func (s *Service) GetFormByID(ctx context.Context, id uint64) (*CharacterForm, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToFormDTO(c), nil
}

func (s *Service) find(ctx context.Context, id uint64) (*Character, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr(err, ResourceCharacter, id, "load character")
	}
	return c, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, Internal(err, "failed to count characters")
	}
	return n, nil
}

func (s *Service) CountBySpecies(ctx context.Context, species string) (int64, error) {
	n, err := s.repo.CountBySpeciesIgnoreCase(ctx, species)
	if err != nil {
		return 0, Internal(err, "failed to count characters by species")
	}
	return n, nil
}

func (s *Service) CountByStatus(ctx context.Context, status string) (int64, error) {
	n, err := s.repo.CountByStatusIgnoreCase(ctx, status)
	if err != nil {
		return 0, Internal(err, "failed to count characters by status")
	}
	return n, nil
}

func (s *Service) CountByGender(ctx context.Context, gender string) (int64, error) {
	n, err := s.repo.CountByGenderIgnoreCase(ctx, gender)
	if err != nil {
		return 0, Internal(err, "failed to count characters by gender")
	}
	return n, nil
}

func (s *Service) SearchByName(ctx context.Context, keyword string) ([]CharacterDTO, error) {
	list, err := s.repo.FindByNameContainingIgnoreCase(ctx, keyword)
	if err != nil {
		return nil, Internal(err, "failed to search characters")
	}
	return ToDTOList(list), nil
}

// Filter returns the characters matching every predicate set in f. The
// candidate set comes from the store lookup for the first set field; the
// remaining predicates are applied here.
func (s *Service) Filter(ctx context.Context, f Filter) ([]CharacterDTO, error) {
	candidates, err := s.filterCandidates(ctx, f)
	if err != nil {
		return nil, Internal(err, "failed to filter characters")
	}

	matched := make([]Character, 0, len(candidates))
	for i := range candidates {
		if f.Match(&candidates[i]) {
			matched = append(matched, candidates[i])
		}
	}
	return ToDTOList(matched), nil
}

func (s *Service) filterCandidates(ctx context.Context, f Filter) ([]Character, error) {
	if v, ok := f.Species.Get(); ok {
		return s.repo.FindBySpeciesIgnoreCase(ctx, v)
	}
	if v, ok := f.Status.Get(); ok {
		return s.repo.FindByStatusIgnoreCase(ctx, v)
	}
	if v, ok := f.Gender.Get(); ok {
		return s.repo.FindByGenderIgnoreCase(ctx, v)
	}
	if v, ok := f.Origin.Get(); ok {
		return s.repo.FindByOriginIgnoreCase(ctx, v)
	}
	return s.repo.FindAll(ctx)
}

func (s *Service) DistinctSpecies(ctx context.Context) ([]string, error) {
	values, err := s.repo.FindDistinctSpecies(ctx)
	if err != nil {
		return nil, Internal(err, "failed to list species")
	}
	return nonNil(values), nil
}

func (s *Service) DistinctOrigins(ctx context.Context) ([]string, error) {
	values, err := s.repo.FindDistinctOrigins(ctx)
	if err != nil {
		return nil, Internal(err, "failed to list origins")
	}
	return nonNil(values), nil
}

// GetRandom picks one character uniformly from the current set. The set is
// reloaded on every call.
func (s *Service) GetRandom(ctx context.Context) (*CharacterDTO, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, Internal(err, "failed to list characters")
	}
	if len(list) == 0 {
		return nil, &Error{
			Kind:     KindNotFound,
			Code:     CodeNotFound,
			Resource: ResourceCharacter,
			Message:  "no characters available",
		}
	}
	return ToDTO(&list[s.randIntN(len(list))]), nil
}

// Create validates dto and inserts it. Any client-supplied ID is ignored.
func (s *Service) Create(ctx context.Context, dto *CharacterDTO) (*CharacterDTO, error) {
	if dto == nil {
		return nil, InvalidData("character must not be empty")
	}
	entity := ToEntity(dto)
	entity.ID = 0
	if err := s.insert(ctx, entity); err != nil {
		return nil, err
	}
	return ToDTO(entity), nil
}

// CreateFromForm is Create for the form view. Presence and length checks have
// already run at binding time.
func (s *Service) CreateFromForm(ctx context.Context, form *CharacterForm) (*CharacterForm, error) {
	if form == nil {
		return nil, InvalidData("character must not be empty")
	}
	entity := FromFormDTO(form)
	entity.ID = 0
	if err := s.insert(ctx, entity); err != nil {
		return nil, err
	}
	return ToFormDTO(entity), nil
}

func (s *Service) insert(ctx context.Context, entity *Character) error {
	if err := ValidateCharacter(entity); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, entity); err != nil {
		return Internal(err, "failed to create character")
	}
	s.recorder.RecordWrite(ResourceCharacter, "create")
	return nil
}

// Update replaces every field of the character with the given id. The
// existence check and the write are not atomic; concurrent updates are
// last-write-wins.
func (s *Service) Update(ctx context.Context, id uint64, dto *CharacterDTO) (*CharacterDTO, error) {
	if dto == nil {
		return nil, InvalidData("character must not be empty")
	}
	entity := ToEntity(dto)
	if err := s.replace(ctx, id, entity); err != nil {
		return nil, err
	}
	return ToDTO(entity), nil
}

func (s *Service) UpdateFromForm(ctx context.Context, id uint64, form *CharacterForm) (*CharacterForm, error) {
	if form == nil {
		return nil, InvalidData("character must not be empty")
	}
	entity := FromFormDTO(form)
	if err := s.replace(ctx, id, entity); err != nil {
		return nil, err
	}
	return ToFormDTO(entity), nil
}

func (s *Service) replace(ctx context.Context, id uint64, entity *Character) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return Internal(err, "failed to load character")
	}
	if !exists {
		return notFound(ResourceCharacter, id, nil)
	}
	if err := ValidateCharacter(entity); err != nil {
		return err
	}
	entity.ID = id
	if err := s.repo.Save(ctx, entity); err != nil {
		return Internal(err, "failed to update character")
	}
	s.recorder.RecordWrite(ResourceCharacter, "update")
	return nil
}

// Delete removes the character. Favorites that reference it are kept.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return wrapStoreErr(err, ResourceCharacter, id, "delete character")
	}
	s.recorder.RecordWrite(ResourceCharacter, "delete")
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
