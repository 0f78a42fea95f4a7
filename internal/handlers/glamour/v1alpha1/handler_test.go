package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/handlers/glamour/v1alpha1"
	"github.com/KirkDiggler/glamour-api/internal/orchestrators/glamour"
	glamourmock "github.com/KirkDiggler/glamour-api/internal/orchestrators/glamour/mock"
	"github.com/KirkDiggler/glamour-api/internal/repositories/bindings"
	"github.com/KirkDiggler/glamour-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *glamourmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context

	actor appearance.ActorIdentifier
	state *glamour.ActorState
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = glamourmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: s.mockService})
	s.Require().NoError(err)
	s.handler = handler

	s.actor = testutils.TestActor()
	data := testutils.CreateTestCharacterData()
	s.state = &glamour.ActorState{
		Actor:    s.actor,
		Data:     data,
		Baseline: data,
		Changed:  appearance.FieldSet{Equip: appearance.EquipFlag(0).With(appearance.SlotHead)},
		Code:     "code",
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) toStruct(v any) *structpb.Struct {
	out, err := v1alpha1.ToStruct(v)
	s.Require().NoError(err)
	return out
}

func (s *HandlerTestSuite) assertCode(err error, code codes.Code) {
	st, ok := status.FromError(err)
	s.Require().True(ok, "expected a status error, got %v", err)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandler_Validation() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestReportActor() {
	data := testutils.CreateTestCharacterData()
	s.mockService.EXPECT().
		ReportActor(s.ctx, &glamour.ReportActorInput{Actor: s.actor, Data: data, Visor: true}).
		Return(&glamour.ReportActorOutput{NewlyTracked: true, State: s.state}, nil)

	resp, err := s.handler.ReportActor(s.ctx, s.toStruct(v1alpha1.ReportActorRequest{
		Actor: s.actor.String(),
		Data:  v1alpha1.CharacterToMessage(data),
		Visor: true,
	}))
	s.Require().NoError(err)

	var msg v1alpha1.ReportActorResponse
	s.Require().NoError(v1alpha1.FromStruct(resp, &msg))
	s.True(msg.NewlyTracked)
	s.Equal(s.actor.String(), msg.State.Actor)
	s.Equal([]string{"head"}, msg.State.Changed.Equip)
	s.Equal(uint16(6000), msg.State.Data.Equipment["head"].Set)
	s.Equal(uint8(appearance.RaceElezen), msg.State.Data.Customize["race"])
}

func (s *HandlerTestSuite) TestReportActor_BadInput() {
	testCases := []struct {
		name string
		req  v1alpha1.ReportActorRequest
	}{
		{name: "missing actor", req: v1alpha1.ReportActorRequest{}},
		{name: "malformed actor", req: v1alpha1.ReportActorRequest{Actor: "nobody"}},
		{name: "unknown customization", req: v1alpha1.ReportActorRequest{
			Actor: s.actor.String(),
			Data:  v1alpha1.CharacterMessage{Customize: map[string]uint8{"wings": 1}},
		}},
		{name: "weapon in equipment", req: v1alpha1.ReportActorRequest{
			Actor: s.actor.String(),
			Data:  v1alpha1.CharacterMessage{Equipment: map[string]v1alpha1.ArmorMessage{"main_hand": {Set: 1}}},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.ReportActor(s.ctx, s.toStruct(tc.req))
			s.assertCode(err, codes.InvalidArgument)
		})
	}

	s.Run("nil body", func() {
		_, err := s.handler.ReportActor(s.ctx, nil)
		s.assertCode(err, codes.InvalidArgument)
	})
}

func (s *HandlerTestSuite) TestUntrackActor() {
	s.mockService.EXPECT().
		UntrackActor(s.ctx, &glamour.UntrackActorInput{Actor: s.actor}).
		Return(&glamour.UntrackActorOutput{Removed: true}, nil)

	resp, err := s.handler.UntrackActor(s.ctx, wrapperspb.String(s.actor.String()))
	s.Require().NoError(err)
	s.True(resp.GetValue())
}

func (s *HandlerTestSuite) TestGetActorState_NotTracked() {
	s.mockService.EXPECT().
		GetActorState(s.ctx, &glamour.GetActorStateInput{Actor: s.actor}).
		Return(nil, errors.NotFoundf("actor %s is not tracked", s.actor))

	_, err := s.handler.GetActorState(s.ctx, wrapperspb.String(s.actor.String()))
	s.assertCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestListActors() {
	s.mockService.EXPECT().
		ListActors(s.ctx, &glamour.ListActorsInput{}).
		Return(&glamour.ListActorsOutput{Actors: []appearance.ActorIdentifier{appearance.NpcID(7), s.actor}}, nil)

	resp, err := s.handler.ListActors(s.ctx, &emptypb.Empty{})
	s.Require().NoError(err)

	var msg v1alpha1.ListActorsResponse
	s.Require().NoError(v1alpha1.FromStruct(resp, &msg))
	s.Equal([]string{"npc:7", s.actor.String()}, msg.Actors)
}

func (s *HandlerTestSuite) TestApplyDesign_LockConflictReason() {
	s.mockService.EXPECT().
		ApplyDesign(s.ctx, &glamour.ApplyDesignInput{Actor: s.actor, DesignID: "dsg_1"}).
		Return(&glamour.ApplyDesignOutput{
			Result: design.ApplyResult{
				Locked:   appearance.FieldSet{Equip: appearance.EquipFlag(0).With(appearance.SlotHead)},
				Rejected: appearance.EquipFlag(0).With(appearance.SlotBody),
			},
			State: s.state,
		}, nil)

	resp, err := s.handler.ApplyDesign(s.ctx, s.toStruct(v1alpha1.ApplyDesignRequest{
		Actor:    s.actor.String(),
		DesignID: "dsg_1",
	}))
	s.Require().NoError(err)

	var msg v1alpha1.ApplyDesignResponse
	s.Require().NoError(v1alpha1.FromStruct(resp, &msg))
	s.Equal([]string{"head"}, msg.Result.Locked.Equip)
	s.Equal([]string{"body"}, msg.Result.Rejected)
}

func (s *HandlerTestSuite) TestSetLock() {
	s.mockService.EXPECT().
		SetLock(s.ctx, &glamour.SetLockInput{
			Actor:     s.actor,
			Customize: []appearance.CustomizeIndex{appearance.CustomizeHairstyle},
			Equip:     []appearance.EquipSlot{appearance.SlotHead, appearance.SlotMainHand},
			Locked:    true,
		}).
		Return(&glamour.SetLockOutput{State: s.state}, nil)

	_, err := s.handler.SetLock(s.ctx, s.toStruct(v1alpha1.SetLockRequest{
		Actor:     s.actor.String(),
		Customize: []string{"hairstyle"},
		Equip:     []string{"head", "main_hand"},
		Locked:    true,
	}))
	s.NoError(err)

	_, err = s.handler.SetLock(s.ctx, s.toStruct(v1alpha1.SetLockRequest{
		Actor: s.actor.String(),
		Equip: []string{"tail"},
	}))
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestReleaseFields_LockConflict() {
	s.mockService.EXPECT().
		ReleaseFields(s.ctx, gomock.Any()).
		Return(nil, errors.LockConflict("head"))

	_, err := s.handler.ReleaseFields(s.ctx, s.toStruct(v1alpha1.ReleaseFieldsRequest{
		Actor: s.actor.String(),
		Equip: []string{"head"},
	}))
	s.assertCode(err, codes.Aborted)
	s.True(errors.IsLockConflict(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestEditActor() {
	main := appearance.Weapon{Set: 2001, Type: 2, Variant: 3}
	s.mockService.EXPECT().
		EditActor(s.ctx, &glamour.EditActorInput{
			Actor: s.actor,
			Edit: glamour.ActorEdit{
				Customize: map[appearance.CustomizeIndex]byte{appearance.CustomizeHairColor: 5},
				Armor:     map[appearance.EquipSlot]appearance.Armor{appearance.SlotFeet: {Set: 10, Variant: 1}},
				MainHand:  &main,
				Stains:    map[appearance.EquipSlot]appearance.StainID{appearance.SlotFeet: 3},
				Toggles:   map[appearance.ToggleFlag]bool{appearance.ToggleWeaponVisible: false},
			},
			Force: true,
		}).
		Return(&glamour.EditActorOutput{State: s.state}, nil)

	_, err := s.handler.EditActor(s.ctx, s.toStruct(v1alpha1.EditActorRequest{
		Actor:     s.actor.String(),
		Force:     true,
		Customize: map[string]uint8{"hair_color": 5},
		Armor:     map[string]v1alpha1.ArmorMessage{"feet": {Set: 10, Variant: 1}},
		MainHand:  &v1alpha1.WeaponMessage{Set: 2001, Type: 2, Variant: 3},
		Stains:    map[string]uint8{"feet": 3},
		Toggles:   map[string]bool{"weapon_visible": false},
	}))
	s.NoError(err)

	_, err = s.handler.EditActor(s.ctx, s.toStruct(v1alpha1.EditActorRequest{
		Actor:   s.actor.String(),
		Toggles: map[string]bool{"invisible": true},
	}))
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestSaveDesign() {
	stored := testutils.CreateTestStoredDesign("Casual")
	saved := *stored
	saved.ID = "dsg_9"
	saved.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	saved.UpdatedAt = saved.CreatedAt

	s.mockService.EXPECT().
		SaveDesign(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *glamour.SaveDesignInput) (*glamour.SaveDesignOutput, error) {
			s.Equal("Casual", input.Design.Name)
			s.Equal(stored.Code(), input.Design.Code())
			return &glamour.SaveDesignOutput{Design: &saved, Created: true}, nil
		})

	resp, err := s.handler.SaveDesign(s.ctx, s.toStruct(v1alpha1.SaveDesignRequest{
		Design: v1alpha1.DesignToMessage(stored),
	}))
	s.Require().NoError(err)

	var msg v1alpha1.SaveDesignResponse
	s.Require().NoError(v1alpha1.FromStruct(resp, &msg))
	s.True(msg.Created)
	s.Equal("dsg_9", msg.Design.ID)
	s.Equal(saved.CreatedAt.Unix(), msg.Design.CreatedAt)
}

func (s *HandlerTestSuite) TestSaveDesign_BadCode() {
	_, err := s.handler.SaveDesign(s.ctx, s.toStruct(v1alpha1.SaveDesignRequest{
		Design: v1alpha1.DesignMessage{Name: "x", Code: "not base64!"},
	}))
	s.assertCode(err, codes.InvalidArgument)
	s.True(errors.IsDecodeFailed(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestDesignLookups() {
	d := testutils.CreateTestStoredDesign("One")
	d.ID = "dsg_1"

	s.mockService.EXPECT().
		GetDesign(s.ctx, &glamour.GetDesignInput{ID: "dsg_1"}).
		Return(&glamour.GetDesignOutput{Design: d}, nil)
	s.mockService.EXPECT().
		ListDesigns(s.ctx, &glamour.ListDesignsInput{}).
		Return(&glamour.ListDesignsOutput{Designs: []*design.StoredDesign{d}}, nil)
	s.mockService.EXPECT().
		DeleteDesign(s.ctx, &glamour.DeleteDesignInput{ID: "dsg_1"}).
		Return(nil, errors.WriteProtected("dsg_1"))

	resp, err := s.handler.GetDesign(s.ctx, wrapperspb.String("dsg_1"))
	s.Require().NoError(err)
	var got v1alpha1.DesignMessage
	s.Require().NoError(v1alpha1.FromStruct(resp, &got))
	s.Equal(d.Code(), got.Code)

	list, err := s.handler.ListDesigns(s.ctx, &emptypb.Empty{})
	s.Require().NoError(err)
	var listed v1alpha1.ListDesignsResponse
	s.Require().NoError(v1alpha1.FromStruct(list, &listed))
	s.Len(listed.Designs, 1)

	_, err = s.handler.DeleteDesign(s.ctx, wrapperspb.String("dsg_1"))
	s.assertCode(err, codes.FailedPrecondition)

	_, err = s.handler.GetDesign(s.ctx, wrapperspb.String(""))
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestCaptureDesign() {
	d := testutils.CreateTestStoredDesign("Snap")
	s.mockService.EXPECT().
		CaptureDesign(s.ctx, &glamour.CaptureDesignInput{Actor: s.actor, Name: "Snap"}).
		Return(&glamour.CaptureDesignOutput{Design: d}, nil)

	resp, err := s.handler.CaptureDesign(s.ctx, s.toStruct(v1alpha1.CaptureDesignRequest{
		Actor: s.actor.String(),
		Name:  "Snap",
	}))
	s.Require().NoError(err)

	var msg v1alpha1.DesignMessage
	s.Require().NoError(v1alpha1.FromStruct(resp, &msg))
	s.Equal("Snap", msg.Name)
}

func (s *HandlerTestSuite) TestBindings() {
	boundAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	binding := &bindings.Binding{Actor: s.actor, DesignID: "dsg_2", BoundAt: boundAt}

	s.mockService.EXPECT().
		BindDesign(s.ctx, &glamour.BindDesignInput{Actor: s.actor, DesignID: "dsg_2"}).
		Return(&glamour.BindDesignOutput{Binding: binding, Replaced: "dsg_1"}, nil)
	s.mockService.EXPECT().
		ListBindings(s.ctx, &glamour.ListBindingsInput{}).
		Return(&glamour.ListBindingsOutput{Bindings: []*bindings.Binding{binding}}, nil)
	s.mockService.EXPECT().
		UnbindDesign(s.ctx, &glamour.UnbindDesignInput{Actor: s.actor}).
		Return(nil, errors.NotFoundf("actor %s has no bound design", s.actor))

	resp, err := s.handler.BindDesign(s.ctx, s.toStruct(v1alpha1.BindDesignRequest{
		Actor:    s.actor.String(),
		DesignID: "dsg_2",
	}))
	s.Require().NoError(err)
	var msg v1alpha1.BindDesignResponse
	s.Require().NoError(v1alpha1.FromStruct(resp, &msg))
	s.Equal(s.actor.String(), msg.Binding.Actor)
	s.Equal(boundAt.Unix(), msg.Binding.BoundAt)
	s.Equal("dsg_1", msg.Replaced)

	list, err := s.handler.ListBindings(s.ctx, &emptypb.Empty{})
	s.Require().NoError(err)
	var listed v1alpha1.ListBindingsResponse
	s.Require().NoError(v1alpha1.FromStruct(list, &listed))
	s.Require().Len(listed.Bindings, 1)
	s.Equal("dsg_2", listed.Bindings[0].DesignID)

	_, err = s.handler.UnbindDesign(s.ctx, wrapperspb.String(s.actor.String()))
	s.assertCode(err, codes.NotFound)

	_, err = s.handler.UnbindDesign(s.ctx, wrapperspb.String("bogus"))
	s.assertCode(err, codes.InvalidArgument)

	_, err = s.handler.BindDesign(s.ctx, s.toStruct(v1alpha1.BindDesignRequest{Actor: "bogus", DesignID: "dsg_2"}))
	s.assertCode(err, codes.InvalidArgument)
}
