package glamour_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/glamour-api/internal/config"
	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/host"
	"github.com/KirkDiggler/glamour-api/internal/orchestrators/glamour"
	"github.com/KirkDiggler/glamour-api/internal/repositories/bindings"
	"github.com/KirkDiggler/glamour-api/internal/repositories/designs"
	designsmock "github.com/KirkDiggler/glamour-api/internal/repositories/designs/mock"
	"github.com/KirkDiggler/glamour-api/internal/state"
	statemock "github.com/KirkDiggler/glamour-api/internal/state/mock"
	"github.com/KirkDiggler/glamour-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *designsmock.MockRepository
	mockRedrawer *statemock.MockRedrawer
	bindings     *bindings.InMemoryRepository
	host         *host.Memory
	settings     *config.Config
	orchestrator glamour.Service
	ctx          context.Context

	actor appearance.ActorIdentifier
	data  appearance.CharacterData
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = designsmock.NewMockRepository(s.ctrl)
	s.mockRedrawer = statemock.NewMockRedrawer(s.ctrl)
	s.bindings = bindings.NewInMemory(nil)
	s.host = host.NewMemory()
	s.settings = &config.Config{
		StateEnabled:          true,
		SkipInvalidCustomize:  true,
		RestrictedGearEnabled: true,
	}
	s.ctx = context.Background()

	tracker, err := state.NewTracker(&state.TrackerConfig{
		Host:     s.host,
		Settings: s.settings,
		Redrawer: s.mockRedrawer,

		BoundDesigns: glamour.NewBoundDesignSource(s.bindings, s.mockRepo),
	})
	s.Require().NoError(err)

	orch, err := glamour.NewOrchestrator(&glamour.Config{
		Host:       s.host,
		Tracker:    tracker,
		DesignRepo:  s.mockRepo,
		BindingRepo: s.bindings,
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.actor = testutils.TestActor()
	s.data = testutils.CreateTestCharacterData()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) report(data appearance.CharacterData) *glamour.ReportActorOutput {
	out, err := s.orchestrator.ReportActor(s.ctx, &glamour.ReportActorInput{Actor: s.actor, Data: data})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validation() {
	_, err := glamour.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = glamour.NewOrchestrator(&glamour.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestReportActor() {
	s.Run("first report tracks the actor", func() {
		out := s.report(s.data)
		s.True(out.NewlyTracked)
		s.Equal(s.data, out.State.Data)
		s.Equal(s.data, out.State.Baseline)
		s.True(out.State.Changed.IsEmpty())
		s.False(out.State.NeedsRedraw)
	})

	s.Run("later report absorbs drift", func() {
		drifted := s.data
		drifted.SetArmor(appearance.SlotHands, appearance.Armor{Set: 1, Variant: 1})

		out := s.report(drifted)
		s.False(out.NewlyTracked)
		s.True(out.Drift.Absorbed.Equip.Has(appearance.SlotHands))
		s.True(out.State.Changed.Equip.Has(appearance.SlotHands))
		s.Equal(appearance.Armor{Set: 1, Variant: 1}, out.State.Data.Armor(appearance.SlotHands))
	})

	s.Run("identical report is idempotent", func() {
		drifted := s.data
		drifted.SetArmor(appearance.SlotHands, appearance.Armor{Set: 1, Variant: 1})

		out := s.report(drifted)
		s.False(out.Drift.HasDrift())
	})
}

func (s *OrchestratorTestSuite) TestReportActor_InvalidInput() {
	_, err := s.orchestrator.ReportActor(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ReportActor(s.ctx, &glamour.ReportActorInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUntrackActor() {
	s.report(s.data)

	out, err := s.orchestrator.UntrackActor(s.ctx, &glamour.UntrackActorInput{Actor: s.actor})
	s.Require().NoError(err)
	s.True(out.Removed)

	_, ok := s.host.ReadActorSnapshot(s.actor)
	s.False(ok)

	_, err = s.orchestrator.GetActorState(s.ctx, &glamour.GetActorStateInput{Actor: s.actor})
	s.True(errors.IsNotFound(err))

	out, err = s.orchestrator.UntrackActor(s.ctx, &glamour.UntrackActorInput{Actor: s.actor})
	s.Require().NoError(err)
	s.False(out.Removed)
}

func (s *OrchestratorTestSuite) TestListActors() {
	s.report(s.data)
	_, err := s.orchestrator.ReportActor(s.ctx, &glamour.ReportActorInput{Actor: appearance.NpcID(1001)})
	s.Require().NoError(err)

	out, err := s.orchestrator.ListActors(s.ctx, &glamour.ListActorsInput{})
	s.Require().NoError(err)
	s.Equal([]appearance.ActorIdentifier{appearance.NpcID(1001), s.actor}, out.Actors)
}

func (s *OrchestratorTestSuite) TestApplyDesign_ByID() {
	s.report(s.data)
	stored := testutils.CreateTestStoredDesign("Casual")
	stored.ID = "dsg_1"

	s.mockRepo.EXPECT().
		Get(s.ctx, designs.GetInput{ID: "dsg_1"}).
		Return(&designs.GetOutput{Design: stored}, nil)

	out, err := s.orchestrator.ApplyDesign(s.ctx, &glamour.ApplyDesignInput{Actor: s.actor, DesignID: "dsg_1"})
	s.Require().NoError(err)

	s.True(out.Result.Changed.Customize.Has(appearance.CustomizeHairstyle))
	s.True(out.Result.Changed.Equip.Has(appearance.SlotHead))
	s.Equal(byte(12), out.State.Data.Customize.Get(appearance.CustomizeHairstyle))
	s.Equal(appearance.Armor{Set: 6120, Variant: 2, Stain: 17}, out.State.Data.Armor(appearance.SlotHead))
	s.True(out.State.Toggles.Has(appearance.ToggleHatVisible))
}

func (s *OrchestratorTestSuite) TestApplyDesign_ByCodeRequestsRedraw() {
	s.report(s.data)

	source := &design.StoredDesign{}
	s.Require().NoError(source.SetCustomize(appearance.CustomizeBodyType, 4))

	s.mockRedrawer.EXPECT().
		RequestRedraw(s.ctx, gomock.Any(), "body_type 0 -> 4").
		Return(nil)

	out, err := s.orchestrator.ApplyDesign(s.ctx, &glamour.ApplyDesignInput{Actor: s.actor, Code: source.Code()})
	s.Require().NoError(err)
	s.True(out.State.NeedsRedraw)
	s.Equal("body_type 0 -> 4", out.State.RedrawReason)
}

func (s *OrchestratorTestSuite) TestApplyDesign_Errors() {
	s.report(s.data)

	s.Run("both sources", func() {
		_, err := s.orchestrator.ApplyDesign(s.ctx, &glamour.ApplyDesignInput{Actor: s.actor, DesignID: "x", Code: "y"})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("no source", func() {
		_, err := s.orchestrator.ApplyDesign(s.ctx, &glamour.ApplyDesignInput{Actor: s.actor})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("bad code", func() {
		_, err := s.orchestrator.ApplyDesign(s.ctx, &glamour.ApplyDesignInput{Actor: s.actor, Code: "AAAA"})
		s.True(errors.IsDecodeFailed(err))
	})

	s.Run("unknown design", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, designs.GetInput{ID: "missing"}).
			Return(nil, errors.NotFound("design with ID missing not found"))

		_, err := s.orchestrator.ApplyDesign(s.ctx, &glamour.ApplyDesignInput{Actor: s.actor, DesignID: "missing"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("untracked actor", func() {
		source := &design.StoredDesign{}
		s.Require().NoError(source.SetCustomize(appearance.CustomizeHairstyle, 1))
		_, err := s.orchestrator.ApplyDesign(s.ctx, &glamour.ApplyDesignInput{
			Actor: appearance.NpcID(9),
			Code:  source.Code(),
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestLockAndEdit() {
	s.report(s.data)
	head := appearance.Armor{Set: 9000, Variant: 1}

	_, err := s.orchestrator.SetLock(s.ctx, &glamour.SetLockInput{
		Actor:  s.actor,
		Equip:  []appearance.EquipSlot{appearance.SlotHead},
		Locked: true,
	})
	s.Require().NoError(err)

	s.Run("normal edit hits the lock", func() {
		_, err := s.orchestrator.EditActor(s.ctx, &glamour.EditActorInput{
			Actor: s.actor,
			Edit:  glamour.ActorEdit{Armor: map[appearance.EquipSlot]appearance.Armor{appearance.SlotHead: head}},
		})
		s.True(errors.IsLockConflict(err))
	})

	s.Run("forced edit passes the lock", func() {
		out, err := s.orchestrator.EditActor(s.ctx, &glamour.EditActorInput{
			Actor: s.actor,
			Edit: glamour.ActorEdit{
				Armor:   map[appearance.EquipSlot]appearance.Armor{appearance.SlotHead: head},
				Stains:  map[appearance.EquipSlot]appearance.StainID{appearance.SlotHead: 40},
				Toggles: map[appearance.ToggleFlag]bool{appearance.ToggleWet: true},
			},
			Force: true,
		})
		s.Require().NoError(err)
		s.Equal(appearance.Armor{Set: 9000, Variant: 1, Stain: 40}, out.State.Data.Armor(appearance.SlotHead))
		s.True(out.State.Fixed.Equip.Has(appearance.SlotHead))
		s.True(out.State.Changed.Equip.Has(appearance.SlotHead))
		s.True(out.State.Toggles.Has(appearance.ToggleWet))
	})

	s.Run("release of a locked slot conflicts", func() {
		_, err := s.orchestrator.ReleaseFields(s.ctx, &glamour.ReleaseFieldsInput{
			Actor: s.actor,
			Equip: []appearance.EquipSlot{appearance.SlotHead},
		})
		s.True(errors.IsLockConflict(err))
	})

	s.Run("unlock then release restores the host value", func() {
		_, err := s.orchestrator.SetLock(s.ctx, &glamour.SetLockInput{
			Actor: s.actor,
			Equip: []appearance.EquipSlot{appearance.SlotHead},
		})
		s.Require().NoError(err)

		out, err := s.orchestrator.ReleaseFields(s.ctx, &glamour.ReleaseFieldsInput{
			Actor: s.actor,
			Equip: []appearance.EquipSlot{appearance.SlotHead},
		})
		s.Require().NoError(err)
		s.Equal(s.data.Armor(appearance.SlotHead), out.State.Data.Armor(appearance.SlotHead))
		s.False(out.State.Changed.Equip.Has(appearance.SlotHead))
	})
}

func (s *OrchestratorTestSuite) TestEditActor_RejectedEditLeavesStateUnchanged() {
	s.report(s.data)

	_, err := s.orchestrator.SetLock(s.ctx, &glamour.SetLockInput{
		Actor:  s.actor,
		Equip:  []appearance.EquipSlot{appearance.SlotHead},
		Locked: true,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.EditActor(s.ctx, &glamour.EditActorInput{
		Actor: s.actor,
		Edit: glamour.ActorEdit{
			Customize: map[appearance.CustomizeIndex]byte{appearance.CustomizeHairstyle: 13},
			Armor:     map[appearance.EquipSlot]appearance.Armor{appearance.SlotHead: {Set: 9999, Variant: 1}},
			Toggles:   map[appearance.ToggleFlag]bool{appearance.ToggleWet: true},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsLockConflict(err))

	got, err := s.orchestrator.GetActorState(s.ctx, &glamour.GetActorStateInput{Actor: s.actor})
	s.Require().NoError(err)
	s.Equal(s.data, got.State.Data)
	s.True(got.State.Changed.IsEmpty())
	s.False(got.State.Toggles.Has(appearance.ToggleWet))
}

func (s *OrchestratorTestSuite) TestReleaseFields_ConflictLeavesStateUnchanged() {
	s.report(s.data)

	edited, err := s.orchestrator.EditActor(s.ctx, &glamour.EditActorInput{
		Actor: s.actor,
		Edit: glamour.ActorEdit{
			Customize: map[appearance.CustomizeIndex]byte{appearance.CustomizeHairstyle: 13},
			Armor:     map[appearance.EquipSlot]appearance.Armor{appearance.SlotHands: {Set: 77, Variant: 2}},
		},
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.SetLock(s.ctx, &glamour.SetLockInput{
		Actor:  s.actor,
		Equip:  []appearance.EquipSlot{appearance.SlotHead},
		Locked: true,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.ReleaseFields(s.ctx, &glamour.ReleaseFieldsInput{
		Actor:     s.actor,
		Customize: []appearance.CustomizeIndex{appearance.CustomizeHairstyle},
		Equip:     []appearance.EquipSlot{appearance.SlotHands, appearance.SlotHead},
	})
	s.True(errors.IsLockConflict(err))

	got, err := s.orchestrator.GetActorState(s.ctx, &glamour.GetActorStateInput{Actor: s.actor})
	s.Require().NoError(err)
	s.Equal(edited.State.Data, got.State.Data)
	s.Equal(byte(13), got.State.Data.Customize.Get(appearance.CustomizeHairstyle))
	s.True(got.State.Changed.Customize.Has(appearance.CustomizeHairstyle))
	s.True(got.State.Changed.Equip.Has(appearance.SlotHands))
}

func (s *OrchestratorTestSuite) TestEditActor_Validation() {
	s.report(s.data)

	_, err := s.orchestrator.EditActor(s.ctx, &glamour.EditActorInput{Actor: s.actor})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.EditActor(s.ctx, &glamour.EditActorInput{
		Actor: s.actor,
		Edit:  glamour.ActorEdit{Armor: map[appearance.EquipSlot]appearance.Armor{appearance.SlotMainHand: {}}},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetLock(s.ctx, &glamour.SetLockInput{Actor: s.actor, Locked: true})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEditActor_RaceChangeRequestsRedraw() {
	s.report(s.data)

	s.mockRedrawer.EXPECT().
		RequestRedraw(s.ctx, gomock.Any(), "race 2 -> 8").
		Return(nil)

	out, err := s.orchestrator.EditActor(s.ctx, &glamour.EditActorInput{
		Actor: s.actor,
		Edit: glamour.ActorEdit{Customize: map[appearance.CustomizeIndex]byte{
			appearance.CustomizeRace: byte(appearance.RaceViera),
		}},
	})
	s.Require().NoError(err)
	s.True(out.State.NeedsRedraw)
}

func (s *OrchestratorTestSuite) TestSaveDesign() {
	s.Run("without ID creates", func() {
		d := testutils.CreateTestStoredDesign("New")
		saved := *d
		saved.ID = "dsg_1"

		s.mockRepo.EXPECT().
			Create(s.ctx, designs.CreateInput{Design: d}).
			Return(&designs.CreateOutput{Design: &saved}, nil)

		out, err := s.orchestrator.SaveDesign(s.ctx, &glamour.SaveDesignInput{Design: d})
		s.Require().NoError(err)
		s.True(out.Created)
		s.Equal("dsg_1", out.Design.ID)
	})

	s.Run("existing ID updates", func() {
		d := testutils.CreateTestStoredDesign("Existing")
		d.ID = "dsg_2"

		s.mockRepo.EXPECT().
			Get(s.ctx, designs.GetInput{ID: "dsg_2"}).
			Return(&designs.GetOutput{Design: d}, nil)
		s.mockRepo.EXPECT().
			Update(s.ctx, designs.UpdateInput{Design: d}).
			Return(&designs.UpdateOutput{Design: d}, nil)

		out, err := s.orchestrator.SaveDesign(s.ctx, &glamour.SaveDesignInput{Design: d})
		s.Require().NoError(err)
		s.False(out.Created)
	})

	s.Run("unknown ID creates with that ID", func() {
		d := testutils.CreateTestStoredDesign("Imported")
		d.ID = "imported"

		s.mockRepo.EXPECT().
			Get(s.ctx, designs.GetInput{ID: "imported"}).
			Return(nil, errors.NotFound("not found"))
		s.mockRepo.EXPECT().
			Create(s.ctx, designs.CreateInput{Design: d}).
			Return(&designs.CreateOutput{Design: d}, nil)

		out, err := s.orchestrator.SaveDesign(s.ctx, &glamour.SaveDesignInput{Design: d})
		s.Require().NoError(err)
		s.True(out.Created)
	})

	s.Run("protected design surfaces the reason", func() {
		d := testutils.CreateTestStoredDesign("Locked")
		d.ID = "dsg_3"

		s.mockRepo.EXPECT().
			Get(s.ctx, designs.GetInput{ID: "dsg_3"}).
			Return(&designs.GetOutput{Design: d}, nil)
		s.mockRepo.EXPECT().
			Update(s.ctx, designs.UpdateInput{Design: d}).
			Return(nil, errors.WriteProtected("dsg_3"))

		_, err := s.orchestrator.SaveDesign(s.ctx, &glamour.SaveDesignInput{Design: d})
		s.True(errors.IsWriteProtected(err))
	})

	s.Run("nil design", func() {
		_, err := s.orchestrator.SaveDesign(s.ctx, &glamour.SaveDesignInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestCaptureDesign() {
	s.report(s.data)

	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input designs.CreateInput) (*designs.CreateOutput, error) {
			s.Equal("Snapshot", input.Design.Name)
			s.Equal(appearance.FieldSetAll, input.Design.Mask)
			s.Equal(s.data, input.Design.Data)
			return &designs.CreateOutput{Design: input.Design}, nil
		})

	out, err := s.orchestrator.CaptureDesign(s.ctx, &glamour.CaptureDesignInput{Actor: s.actor, Name: "Snapshot"})
	s.Require().NoError(err)
	s.Equal("Snapshot", out.Design.Name)
}

func (s *OrchestratorTestSuite) TestDesignPassThrough() {
	d := testutils.CreateTestStoredDesign("One")
	d.ID = "dsg_1"

	s.mockRepo.EXPECT().Get(s.ctx, designs.GetInput{ID: "dsg_1"}).Return(&designs.GetOutput{Design: d}, nil)
	s.mockRepo.EXPECT().List(s.ctx, designs.ListInput{}).Return(&designs.ListOutput{Designs: []*design.StoredDesign{d}}, nil)
	s.mockRepo.EXPECT().Delete(s.ctx, designs.DeleteInput{ID: "dsg_1"}).Return(&designs.DeleteOutput{}, nil)

	got, err := s.orchestrator.GetDesign(s.ctx, &glamour.GetDesignInput{ID: "dsg_1"})
	s.Require().NoError(err)
	s.Equal(d, got.Design)

	list, err := s.orchestrator.ListDesigns(s.ctx, &glamour.ListDesignsInput{})
	s.Require().NoError(err)
	s.Len(list.Designs, 1)

	_, err = s.orchestrator.DeleteDesign(s.ctx, &glamour.DeleteDesignInput{ID: "dsg_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestDisabledEngine() {
	s.report(s.data)
	s.settings.StateEnabled = false

	drifted := s.data
	drifted.SetArmor(appearance.SlotFeet, appearance.Armor{Set: 3, Variant: 1})
	out := s.report(drifted)
	s.False(out.Drift.HasDrift())
	s.Equal(s.data.Armor(appearance.SlotFeet), out.State.Data.Armor(appearance.SlotFeet))
}

func (s *OrchestratorTestSuite) expectDesign(id string) *design.StoredDesign {
	d := testutils.CreateTestStoredDesign(id)
	d.ID = id
	s.mockRepo.EXPECT().
		Get(s.ctx, designs.GetInput{ID: id}).
		Return(&designs.GetOutput{Design: d}, nil)
	return d
}

func (s *OrchestratorTestSuite) TestBindDesign() {
	s.Run("binds an existing design", func() {
		s.expectDesign("dsg_1")

		out, err := s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{Actor: s.actor, DesignID: "dsg_1"})
		s.Require().NoError(err)
		s.Equal(s.actor, out.Binding.Actor)
		s.Equal("dsg_1", out.Binding.DesignID)
		s.Empty(out.Replaced)
	})

	s.Run("rebinding reports the previous design", func() {
		s.expectDesign("dsg_2")

		out, err := s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{Actor: s.actor, DesignID: "dsg_2"})
		s.Require().NoError(err)
		s.Equal("dsg_1", out.Replaced)
	})

	s.Run("unknown design is not bound", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, designs.GetInput{ID: "missing"}).
			Return(nil, errors.NotFound("design with ID missing not found"))

		_, err := s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{Actor: appearance.NpcID(7), DesignID: "missing"})
		s.True(errors.IsNotFound(err))

		_, err = s.bindings.Get(s.ctx, bindings.GetInput{Actor: appearance.NpcID(7)})
		s.True(errors.IsNotFound(err))
	})

	s.Run("validation", func() {
		_, err := s.orchestrator.BindDesign(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))

		_, err = s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{DesignID: "dsg_1"})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{Actor: s.actor})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUnbindAndListBindings() {
	s.expectDesign("dsg_1")
	s.expectDesign("dsg_2")
	_, err := s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{Actor: s.actor, DesignID: "dsg_1"})
	s.Require().NoError(err)
	_, err = s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{Actor: appearance.NpcID(1001), DesignID: "dsg_2"})
	s.Require().NoError(err)

	list, err := s.orchestrator.ListBindings(s.ctx, &glamour.ListBindingsInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Bindings, 2)
	s.Equal(appearance.NpcID(1001), list.Bindings[0].Actor)

	_, err = s.orchestrator.UnbindDesign(s.ctx, &glamour.UnbindDesignInput{Actor: s.actor})
	s.Require().NoError(err)

	_, err = s.orchestrator.UnbindDesign(s.ctx, &glamour.UnbindDesignInput{Actor: s.actor})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.UnbindDesign(s.ctx, &glamour.UnbindDesignInput{})
	s.True(errors.IsInvalidArgument(err))

	list, err = s.orchestrator.ListBindings(s.ctx, &glamour.ListBindingsInput{})
	s.Require().NoError(err)
	s.Len(list.Bindings, 1)
}

func (s *OrchestratorTestSuite) TestBoundDesignAppliedOnReport() {
	s.settings.AutoDesignsEnabled = true
	s.expectDesign("dsg_1")
	_, err := s.orchestrator.BindDesign(s.ctx, &glamour.BindDesignInput{Actor: s.actor, DesignID: "dsg_1"})
	s.Require().NoError(err)

	s.expectDesign("dsg_1")
	out := s.report(s.data)
	s.True(out.NewlyTracked)
	s.Equal(byte(12), out.State.Data.Customize.Get(appearance.CustomizeHairstyle))
	s.Equal(appearance.Armor{Set: 6120, Variant: 2, Stain: 17}, out.State.Data.Armor(appearance.SlotHead))
	s.True(out.State.Changed.Customize.Has(appearance.CustomizeHairstyle))
}

func (s *OrchestratorTestSuite) TestBoundDesignSource() {
	source := glamour.NewBoundDesignSource(s.bindings, s.mockRepo)

	s.Run("unbound actor", func() {
		d, ok, err := source.BoundDesign(s.ctx, s.actor)
		s.NoError(err)
		s.False(ok)
		s.Nil(d)
	})

	s.Run("deleted design counts as unbound", func() {
		_, err := s.bindings.Bind(s.ctx, bindings.BindInput{Actor: s.actor, DesignID: "gone"})
		s.Require().NoError(err)
		s.mockRepo.EXPECT().
			Get(s.ctx, designs.GetInput{ID: "gone"}).
			Return(nil, errors.NotFound("design with ID gone not found"))

		_, ok, err := source.BoundDesign(s.ctx, s.actor)
		s.NoError(err)
		s.False(ok)
	})

	s.Run("storage failure is returned", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, designs.GetInput{ID: "gone"}).
			Return(nil, errors.Unavailable("redis down"))

		_, ok, err := source.BoundDesign(s.ctx, s.actor)
		s.Error(err)
		s.False(ok)
	})

	s.Run("bound design", func() {
		want := s.expectDesign("dsg_1")
		_, err := s.bindings.Bind(s.ctx, bindings.BindInput{Actor: s.actor, DesignID: "dsg_1"})
		s.Require().NoError(err)

		got, ok, err := source.BoundDesign(s.ctx, s.actor)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(want, got)
	})
}
