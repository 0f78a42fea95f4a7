// Package v1alpha1 handles the glamour state gRPC service
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/orchestrators/glamour"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service glamour.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("glamour service is required")
	}
	return nil
}

// Handler implements StateServiceServer
type Handler struct {
	service glamour.Service
}

var _ StateServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// ReportActor records what the host shows and reconciles the actor
func (h *Handler) ReportActor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg ReportActorRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	actor, err := parseActor(msg.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	data, err := CharacterFromMessage(msg.Data)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ReportActor(ctx, &glamour.ReportActorInput{
		Actor: actor,
		Data:  data,
		Visor: msg.Visor,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ReportActorResponse{
		NewlyTracked: out.NewlyTracked,
		Drift:        driftToMessage(out.Drift),
		State:        stateToMessage(out.State),
	})
}

// UntrackActor stops tracking an actor
func (h *Handler) UntrackActor(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	actor, err := parseActor(req.GetValue())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.UntrackActor(ctx, &glamour.UntrackActorInput{Actor: actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return wrapperspb.Bool(out.Removed), nil
}

// GetActorState returns the engine's view of a tracked actor
func (h *Handler) GetActorState(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	actor, err := parseActor(req.GetValue())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetActorState(ctx, &glamour.GetActorStateInput{Actor: actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(stateToMessage(out.State))
}

// ListActors returns every tracked actor
func (h *Handler) ListActors(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	out, err := h.service.ListActors(ctx, &glamour.ListActorsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := ListActorsResponse{Actors: make([]string, 0, len(out.Actors))}
	for _, id := range out.Actors {
		resp.Actors = append(resp.Actors, id.String())
	}
	return respond(resp)
}

// ApplyDesign merges a stored design or a code onto an actor
func (h *Handler) ApplyDesign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg ApplyDesignRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	actor, err := parseActor(msg.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ApplyDesign(ctx, &glamour.ApplyDesignInput{
		Actor:    actor,
		DesignID: msg.DesignID,
		Code:     msg.Code,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ApplyDesignResponse{
		Result: applyResultToMessage(out.Result),
		State:  stateToMessage(out.State),
	})
}

// SetLock locks or unlocks fields of an actor
func (h *Handler) SetLock(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg SetLockRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	actor, err := parseActor(msg.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	customize, equip, err := parseFields(msg.Customize, msg.Equip)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SetLock(ctx, &glamour.SetLockInput{
		Actor:     actor,
		Customize: customize,
		Equip:     equip,
		Locked:    msg.Locked,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(stateToMessage(out.State))
}

// ReleaseFields hands fields back to the host
func (h *Handler) ReleaseFields(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg ReleaseFieldsRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	actor, err := parseActor(msg.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	customize, equip, err := parseFields(msg.Customize, msg.Equip)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ReleaseFields(ctx, &glamour.ReleaseFieldsInput{
		Actor:     actor,
		Customize: customize,
		Equip:     equip,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(stateToMessage(out.State))
}

// EditActor changes individual fields of an actor
func (h *Handler) EditActor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg EditActorRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	actor, err := parseActor(msg.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	edit, err := editFromRequest(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.EditActor(ctx, &glamour.EditActorInput{
		Actor: actor,
		Edit:  edit,
		Force: msg.Force,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(stateToMessage(out.State))
}

// SaveDesign creates or updates a stored design
func (h *Handler) SaveDesign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg SaveDesignRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	d, err := DesignFromMessage(msg.Design)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SaveDesign(ctx, &glamour.SaveDesignInput{Design: d})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(SaveDesignResponse{
		Design:  DesignToMessage(out.Design),
		Created: out.Created,
	})
}

// CaptureDesign saves an actor's intended state as a new design
func (h *Handler) CaptureDesign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg CaptureDesignRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	actor, err := parseActor(msg.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CaptureDesign(ctx, &glamour.CaptureDesignInput{
		Actor:       actor,
		Name:        msg.Name,
		Description: msg.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(DesignToMessage(out.Design))
}

// GetDesign returns a stored design
func (h *Handler) GetDesign(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("design id is required"))
	}

	out, err := h.service.GetDesign(ctx, &glamour.GetDesignInput{ID: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(DesignToMessage(out.Design))
}

// ListDesigns returns every stored design
func (h *Handler) ListDesigns(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	out, err := h.service.ListDesigns(ctx, &glamour.ListDesignsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := ListDesignsResponse{Designs: make([]DesignMessage, 0, len(out.Designs))}
	for _, d := range out.Designs {
		resp.Designs = append(resp.Designs, DesignToMessage(d))
	}
	return respond(resp)
}

// DeleteDesign removes a stored design
func (h *Handler) DeleteDesign(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("design id is required"))
	}

	if _, err := h.service.DeleteDesign(ctx, &glamour.DeleteDesignInput{ID: req.GetValue()}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &emptypb.Empty{}, nil
}

func respond(v any) (*structpb.Struct, error) {
	out, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// BindDesign binds a stored design to an actor
func (h *Handler) BindDesign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var msg BindDesignRequest
	if err := FromStruct(req, &msg); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	actor, err := parseActor(msg.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.BindDesign(ctx, &glamour.BindDesignInput{
		Actor:    actor,
		DesignID: msg.DesignID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(BindDesignResponse{
		Binding:  bindingToMessage(out.Binding),
		Replaced: out.Replaced,
	})
}

// UnbindDesign removes the design bound to an actor
func (h *Handler) UnbindDesign(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	actor, err := parseActor(req.GetValue())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.service.UnbindDesign(ctx, &glamour.UnbindDesignInput{Actor: actor}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &emptypb.Empty{}, nil
}

// ListBindings returns every actor with a bound design
func (h *Handler) ListBindings(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	out, err := h.service.ListBindings(ctx, &glamour.ListBindingsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := ListBindingsResponse{Bindings: make([]BindingMessage, 0, len(out.Bindings))}
	for _, b := range out.Bindings {
		resp.Bindings = append(resp.Bindings, bindingToMessage(b))
	}
	return respond(resp)
}
