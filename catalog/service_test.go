package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"characters_back/catalog"
	mockcatalog "characters_back/catalog/mock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mockcatalog.MockCharacterRepository
	recorder *countingRecorder
	svc      *catalog.Service
	ctx      context.Context
}

type countingRecorder struct {
	writes map[string]int
}

func (r *countingRecorder) RecordWrite(resource, op string) {
	r.writes[resource+":"+op]++
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockcatalog.NewMockCharacterRepository(s.ctrl)
	s.recorder = &countingRecorder{writes: map[string]int{}}
	s.svc = catalog.NewService(s.repo,
		catalog.WithRecorder(s.recorder),
		catalog.WithRandom(func(n int) int { return n - 1 }),
	)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func rick() catalog.Character {
	return catalog.Character{ID: 1, Name: "Rick Sanchez", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"}
}

func morty() catalog.Character {
	return catalog.Character{ID: 2, Name: "Morty Smith", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"}
}

func birdperson() catalog.Character {
	return catalog.Character{ID: 3, Name: "Birdperson", Species: "Alien", Gender: "Male", Origin: "Citadel of Ricks", Status: "Dead"}
}

func (s *ServiceTestSuite) TestGetAll() {
	s.Run("maps every record in store order", func() {
		s.repo.EXPECT().FindAll(s.ctx).Return([]catalog.Character{rick(), morty()}, nil)

		list, err := s.svc.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Equal(uint64(1), list[0].ID)
		s.Equal("Morty Smith", list[1].Name)
	})

	s.Run("empty store returns empty list", func() {
		s.repo.EXPECT().FindAll(s.ctx).Return(nil, nil)

		list, err := s.svc.GetAll(s.ctx)
		s.Require().NoError(err)
		s.NotNil(list)
		s.Empty(list)
	})

	s.Run("store failure is internal", func() {
		s.repo.EXPECT().FindAll(s.ctx).Return(nil, errors.New("connection reset"))

		_, err := s.svc.GetAll(s.ctx)
		s.Equal(catalog.KindInternal, catalog.KindOf(err))
	})
}

func (s *ServiceTestSuite) TestGetByID() {
	s.Run("found", func() {
		r := rick()
		s.repo.EXPECT().FindByID(s.ctx, uint64(1)).Return(&r, nil)

		dto, err := s.svc.GetByID(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal("Rick Sanchez", dto.Name)
	})

	s.Run("missing is not found", func() {
		s.repo.EXPECT().FindByID(s.ctx, uint64(99)).Return(nil, catalog.ErrNotFound)

		_, err := s.svc.GetByID(s.ctx, 99)
		s.Equal(catalog.KindNotFound, catalog.KindOf(err))
		s.ErrorIs(err, catalog.ErrNotFound)
	})

	s.Run("form view", func() {
		b := birdperson()
		s.repo.EXPECT().FindByID(s.ctx, uint64(3)).Return(&b, nil)

		form, err := s.svc.GetFormByID(s.ctx, 3)
		s.Require().NoError(err)
		s.Equal("Citadel of Ricks", form.Origin)
	})
}

func (s *ServiceTestSuite) TestCountsAndSearch() {
	s.repo.EXPECT().CountBySpeciesIgnoreCase(s.ctx, "human").Return(int64(2), nil)
	s.repo.EXPECT().CountByStatusIgnoreCase(s.ctx, "alive").Return(int64(2), nil)
	s.repo.EXPECT().CountByGenderIgnoreCase(s.ctx, "female").Return(int64(0), nil)
	s.repo.EXPECT().Count(s.ctx).Return(int64(3), nil)
	s.repo.EXPECT().FindByNameContainingIgnoreCase(s.ctx, "rick").Return([]catalog.Character{rick()}, nil)

	n, err := s.svc.CountBySpecies(s.ctx, "human")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.svc.CountByStatus(s.ctx, "alive")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.svc.CountByGender(s.ctx, "female")
	s.Require().NoError(err)
	s.Zero(n)

	n, err = s.svc.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), n)

	found, err := s.svc.SearchByName(s.ctx, "rick")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(uint64(1), found[0].ID)
}

func (s *ServiceTestSuite) TestFilter() {
	s.Run("no predicates returns everything", func() {
		all := []catalog.Character{rick(), morty(), birdperson()}
		s.repo.EXPECT().FindAll(s.ctx).Return(all, nil)

		list, err := s.svc.Filter(s.ctx, catalog.Filter{})
		s.Require().NoError(err)
		s.Len(list, len(all))
	})

	s.Run("seeds from species and narrows by status", func() {
		deadHuman := catalog.Character{ID: 4, Name: "Evil Morty", Species: "human", Gender: "Male", Origin: "Earth (C-137)", Status: "Dead"}
		s.repo.EXPECT().FindBySpeciesIgnoreCase(s.ctx, "Human").Return([]catalog.Character{rick(), morty(), deadHuman}, nil)

		list, err := s.svc.Filter(s.ctx, catalog.Filter{
			Species: catalog.Some("Human"),
			Status:  catalog.Some("alive"),
		})
		s.Require().NoError(err)
		s.Len(list, 2)
		for _, c := range list {
			s.Equal("Alive", c.Status)
		}
	})

	s.Run("candidate set is re-checked against the seed field", func() {
		s.repo.EXPECT().FindBySpeciesIgnoreCase(s.ctx, "Human").Return([]catalog.Character{rick(), birdperson()}, nil)

		list, err := s.svc.Filter(s.ctx, catalog.Filter{Species: catalog.Some("Human")})
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal("Rick Sanchez", list[0].Name)
	})

	s.Run("status, gender and origin seeds", func() {
		s.repo.EXPECT().FindByStatusIgnoreCase(s.ctx, "dead").Return([]catalog.Character{birdperson()}, nil)
		s.repo.EXPECT().FindByGenderIgnoreCase(s.ctx, "male").Return([]catalog.Character{rick(), birdperson()}, nil)
		s.repo.EXPECT().FindByOriginIgnoreCase(s.ctx, "citadel of ricks").Return([]catalog.Character{birdperson()}, nil)

		list, err := s.svc.Filter(s.ctx, catalog.Filter{Status: catalog.Some("dead"), Origin: catalog.Some("Citadel of Ricks")})
		s.Require().NoError(err)
		s.Len(list, 1)

		list, err = s.svc.Filter(s.ctx, catalog.Filter{Gender: catalog.Some("male"), Origin: catalog.Some("earth (c-137)")})
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal(uint64(1), list[0].ID)

		list, err = s.svc.Filter(s.ctx, catalog.Filter{Origin: catalog.Some("citadel of ricks")})
		s.Require().NoError(err)
		s.Len(list, 1)
	})
}

func (s *ServiceTestSuite) TestDistinct() {
	s.repo.EXPECT().FindDistinctSpecies(s.ctx).Return([]string{"Human"}, nil)
	s.repo.EXPECT().FindDistinctOrigins(s.ctx).Return(nil, nil)

	species, err := s.svc.DistinctSpecies(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Human"}, species)

	origins, err := s.svc.DistinctOrigins(s.ctx)
	s.Require().NoError(err)
	s.NotNil(origins)
	s.Empty(origins)
}

func (s *ServiceTestSuite) TestGetRandom() {
	s.Run("empty store is not found", func() {
		s.repo.EXPECT().FindAll(s.ctx).Return([]catalog.Character{}, nil)

		_, err := s.svc.GetRandom(s.ctx)
		s.Equal(catalog.KindNotFound, catalog.KindOf(err))
	})

	s.Run("reloads the set on every call", func() {
		s.repo.EXPECT().FindAll(s.ctx).Return([]catalog.Character{rick()}, nil)
		s.repo.EXPECT().FindAll(s.ctx).Return([]catalog.Character{rick(), morty()}, nil)

		first, err := s.svc.GetRandom(s.ctx)
		s.Require().NoError(err)
		s.Equal(uint64(1), first.ID)

		second, err := s.svc.GetRandom(s.ctx)
		s.Require().NoError(err)
		s.Equal(uint64(2), second.ID)
	})
}

func (s *ServiceTestSuite) TestCreate() {
	s.Run("persists a valid character and keeps casing", func() {
		in := &catalog.CharacterDTO{ID: 55, Name: "Squanchy", Species: "ALIEN", Gender: "male", Origin: "Citadel Of Ricks", Status: "alive"}
		s.repo.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *catalog.Character) error {
			s.Zero(c.ID, "client id must not reach the store on create")
			c.ID = 10
			return nil
		})

		out, err := s.svc.Create(s.ctx, in)
		s.Require().NoError(err)
		s.Equal(uint64(10), out.ID)
		s.Equal("ALIEN", out.Species)
		s.Equal("Citadel Of Ricks", out.Origin)
		s.Equal(1, s.recorder.writes["character:create"])
	})

	s.Run("invalid species is rejected before storage", func() {
		in := &catalog.CharacterDTO{Name: "Nemo", Species: "Fish", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"}

		_, err := s.svc.Create(s.ctx, in)
		s.ErrorIs(err, catalog.ErrSpeciesInvalid)
	})

	s.Run("nil body is invalid data", func() {
		_, err := s.svc.Create(s.ctx, nil)
		s.ErrorIs(err, catalog.ErrInvalidData)
	})

	s.Run("form path runs the same allow-lists", func() {
		form := &catalog.CharacterForm{Name: "Gearhead", Species: "Robot", Gender: "Male", Origin: "Gear World", Status: "Alive"}

		_, err := s.svc.CreateFromForm(s.ctx, form)
		s.ErrorIs(err, catalog.ErrOriginInvalid)
	})

	s.Run("form path persists", func() {
		form := &catalog.CharacterForm{Name: "Gearhead", Species: "Robot", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"}
		s.repo.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *catalog.Character) error {
			c.ID = 11
			return nil
		})

		out, err := s.svc.CreateFromForm(s.ctx, form)
		s.Require().NoError(err)
		s.Equal(uint64(11), out.ID)
	})
}

func (s *ServiceTestSuite) TestUpdate() {
	s.Run("replaces the record under the path id", func() {
		in := &catalog.CharacterDTO{ID: 999, Name: "Rick", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "Dead"}
		s.repo.EXPECT().ExistsByID(s.ctx, uint64(1)).Return(true, nil)
		s.repo.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *catalog.Character) error {
			s.Equal(uint64(1), c.ID)
			return nil
		})

		out, err := s.svc.Update(s.ctx, 1, in)
		s.Require().NoError(err)
		s.Equal(uint64(1), out.ID)
		s.Equal("Dead", out.Status)
	})

	s.Run("missing record is not found", func() {
		in := &catalog.CharacterDTO{Name: "Rick", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"}
		s.repo.EXPECT().ExistsByID(s.ctx, uint64(42)).Return(false, nil)

		_, err := s.svc.Update(s.ctx, 42, in)
		s.Equal(catalog.KindNotFound, catalog.KindOf(err))
	})

	s.Run("update validates", func() {
		in := &catalog.CharacterDTO{Name: "Rick", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "zombie"}
		s.repo.EXPECT().ExistsByID(s.ctx, uint64(1)).Return(true, nil)

		_, err := s.svc.Update(s.ctx, 1, in)
		s.ErrorIs(err, catalog.ErrStatusInvalid)
	})

	s.Run("form update", func() {
		form := &catalog.CharacterForm{Name: "Morty", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"}
		s.repo.EXPECT().ExistsByID(s.ctx, uint64(2)).Return(true, nil)
		s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil)

		out, err := s.svc.UpdateFromForm(s.ctx, 2, form)
		s.Require().NoError(err)
		s.Equal(uint64(2), out.ID)
	})
}

func (s *ServiceTestSuite) TestDelete() {
	s.repo.EXPECT().DeleteByID(s.ctx, uint64(1)).Return(nil)
	s.repo.EXPECT().DeleteByID(s.ctx, uint64(2)).Return(catalog.ErrNotFound)

	s.NoError(s.svc.Delete(s.ctx, 1))
	s.Equal(catalog.KindNotFound, catalog.KindOf(s.svc.Delete(s.ctx, 2)))
	s.Equal(1, s.recorder.writes["character:delete"])
}
