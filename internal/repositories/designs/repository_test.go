package designs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/pkg/clock"
	"github.com/KirkDiggler/glamour-api/internal/pkg/idgen"
	"github.com/KirkDiggler/glamour-api/internal/repositories/designs"
	"github.com/KirkDiggler/glamour-api/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(clk clock.Clock, gen idgen.Generator) designs.Repository
	cleanup func()

	ctx   context.Context
	clock *clock.Fixed
	repo  designs.Repository
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk clock.Clock, gen idgen.Generator) designs.Repository {
			return designs.NewInMemory(&designs.InMemoryConfig{Clock: clk, IDGen: gen})
		},
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func(clk clock.Clock, gen idgen.Generator) designs.Repository {
		client, _, cleanup := testutils.CreateTestRedisClient(s.T())
		s.cleanup = cleanup
		repo, err := designs.NewRedis(&designs.RedisConfig{Client: client, Clock: clk, IDGen: gen})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	s.repo = s.newRepo(s.clock, idgen.NewSequential("dsg"))
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

func (s *RepositoryTestSuite) create(name string) *design.StoredDesign {
	out, err := s.repo.Create(s.ctx, designs.CreateInput{Design: testutils.CreateTestStoredDesign(name)})
	s.Require().NoError(err)
	return out.Design
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	created := s.create("Casual")
	s.Equal("dsg_1", created.ID)
	s.True(created.CreatedAt.Equal(s.clock.Now()))

	got, err := s.repo.Get(s.ctx, designs.GetInput{ID: created.ID})
	s.Require().NoError(err)
	s.Equal("Casual", got.Design.Name)
	s.Equal("test design", got.Design.Description)
	s.Equal(created.Code(), got.Design.Code())
	s.Equal(byte(12), got.Design.Customize(appearance.CustomizeHairstyle))
	s.Equal(appearance.StainID(17), got.Design.Stain(appearance.SlotHead))
	s.True(got.Design.Toggle(appearance.ToggleHatVisible))
	s.True(got.Design.CreatedAt.Equal(s.clock.Now()))
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, designs.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, designs.CreateInput{Design: &design.StoredDesign{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestCreateExplicitIDConflict() {
	d := testutils.CreateTestStoredDesign("Raid")
	d.ID = "raid"
	_, err := s.repo.Create(s.ctx, designs.CreateInput{Design: d})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, designs.CreateInput{Design: d})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreateDropsUnmaskedData() {
	d := &design.StoredDesign{Name: "Bare"}
	d.Data.ModelID = 7
	d.Data.SetArmor(appearance.SlotFeet, appearance.Armor{Set: 9, Variant: 1})
	s.Require().NoError(d.SetCustomize(appearance.CustomizeHeight, 50))

	out, err := s.repo.Create(s.ctx, designs.CreateInput{Design: d})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, designs.GetInput{ID: out.Design.ID})
	s.Require().NoError(err)
	s.Equal(appearance.Armor{}, got.Design.Armor(appearance.SlotFeet))
	s.Equal(byte(50), got.Design.Customize(appearance.CustomizeHeight))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, designs.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, designs.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	created := s.create("Casual")
	s.clock.Advance(time.Hour)

	s.Require().NoError(created.SetCustomize(appearance.CustomizeHairColor, 99))
	created.Name = "Casual v2"

	out, err := s.repo.Update(s.ctx, designs.UpdateInput{Design: created})
	s.Require().NoError(err)
	s.True(out.Design.UpdatedAt.Equal(s.clock.Now()))
	s.True(out.Design.CreatedAt.Before(out.Design.UpdatedAt))

	got, err := s.repo.Get(s.ctx, designs.GetInput{ID: created.ID})
	s.Require().NoError(err)
	s.Equal("Casual v2", got.Design.Name)
	s.Equal(byte(99), got.Design.Customize(appearance.CustomizeHairColor))
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	d := testutils.CreateTestStoredDesign("Ghost")
	d.ID = "ghost"
	_, err := s.repo.Update(s.ctx, designs.UpdateInput{Design: d})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestWriteProtection() {
	created := s.create("Heirloom")
	created.WriteProtected = true
	_, err := s.repo.Update(s.ctx, designs.UpdateInput{Design: created})
	s.Require().NoError(err, "setting the flag alone is allowed")

	s.Run("content change is rejected", func() {
		changed := *created
		changed.WriteProtected = false
		s.Require().NoError(changed.SetCustomize(appearance.CustomizeFace, 4))
		changed.WriteProtected = true

		_, err := s.repo.Update(s.ctx, designs.UpdateInput{Design: &changed})
		s.True(errors.IsWriteProtected(err))
	})

	s.Run("rename is rejected", func() {
		renamed := *created
		renamed.Name = "Other"
		_, err := s.repo.Update(s.ctx, designs.UpdateInput{Design: &renamed})
		s.True(errors.IsWriteProtected(err))
	})

	s.Run("delete is rejected", func() {
		_, err := s.repo.Delete(s.ctx, designs.DeleteInput{ID: created.ID})
		s.True(errors.IsWriteProtected(err))
	})

	s.Run("unprotect then delete", func() {
		created.WriteProtected = false
		_, err := s.repo.Update(s.ctx, designs.UpdateInput{Design: created})
		s.Require().NoError(err)

		_, err = s.repo.Delete(s.ctx, designs.DeleteInput{ID: created.ID})
		s.NoError(err)
	})
}

func (s *RepositoryTestSuite) TestDelete() {
	created := s.create("Temp")

	_, err := s.repo.Delete(s.ctx, designs.DeleteInput{ID: created.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, designs.GetInput{ID: created.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, designs.DeleteInput{ID: created.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, designs.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Designs)
}

func (s *RepositoryTestSuite) TestListOrdering() {
	s.create("Zeta")
	s.create("Alpha")
	s.create("Alpha")

	out, err := s.repo.List(s.ctx, designs.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Designs, 3)

	s.Equal("Alpha", out.Designs[0].Name)
	s.Equal("dsg_2", out.Designs[0].ID)
	s.Equal("Alpha", out.Designs[1].Name)
	s.Equal("dsg_3", out.Designs[1].ID)
	s.Equal("Zeta", out.Designs[2].Name)
}

func (s *RepositoryTestSuite) TestReturnedDesignsAreCopies() {
	created := s.create("Copy")
	created.Name = "Mutated"

	got, err := s.repo.Get(s.ctx, designs.GetInput{ID: created.ID})
	s.Require().NoError(err)
	s.Equal("Copy", got.Design.Name)
}

func TestRedisRepository_StaleIndex(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := designs.NewRedis(&designs.RedisConfig{Client: client, IDGen: idgen.NewSequential("dsg")})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Create(ctx, designs.CreateInput{Design: testutils.CreateTestStoredDesign("Kept")})
	require.NoError(t, err)

	_, err = mr.SAdd("design:index", "dangling", "corrupt")
	require.NoError(t, err)
	require.NoError(t, mr.Set("design:corrupt", "{not json"))

	out, err := repo.List(ctx, designs.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Designs, 1)
	assert.Equal(t, "Kept", out.Designs[0].Name)
}

func TestNewRedis_Validation(t *testing.T) {
	_, err := designs.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = designs.NewRedis(&designs.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}
