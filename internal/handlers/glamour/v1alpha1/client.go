package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// Client calls the state service and decodes the Struct bodies into the
// typed messages. Server errors are converted back with
// errors.FromGRPCError so callers can test codes and reasons.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// ReportActor calls StateService.ReportActor
func (c *Client) ReportActor(ctx context.Context, req ReportActorRequest) (*ReportActorResponse, error) {
	var resp ReportActorResponse
	if err := c.call(ctx, "ReportActor", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UntrackActor calls StateService.UntrackActor
func (c *Client) UntrackActor(ctx context.Context, actor string) (bool, error) {
	out := &wrapperspb.BoolValue{}
	if err := c.cc.Invoke(ctx, fullMethod("UntrackActor"), wrapperspb.String(actor), out); err != nil {
		return false, errors.FromGRPCError(err)
	}
	return out.GetValue(), nil
}

// GetActorState calls StateService.GetActorState
func (c *Client) GetActorState(ctx context.Context, actor string) (*ActorStateMessage, error) {
	var resp ActorStateMessage
	if err := c.invoke(ctx, "GetActorState", wrapperspb.String(actor), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListActors calls StateService.ListActors
func (c *Client) ListActors(ctx context.Context) (*ListActorsResponse, error) {
	var resp ListActorsResponse
	if err := c.invoke(ctx, "ListActors", &emptypb.Empty{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApplyDesign calls StateService.ApplyDesign
func (c *Client) ApplyDesign(ctx context.Context, req ApplyDesignRequest) (*ApplyDesignResponse, error) {
	var resp ApplyDesignResponse
	if err := c.call(ctx, "ApplyDesign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetLock calls StateService.SetLock
func (c *Client) SetLock(ctx context.Context, req SetLockRequest) (*ActorStateMessage, error) {
	var resp ActorStateMessage
	if err := c.call(ctx, "SetLock", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReleaseFields calls StateService.ReleaseFields
func (c *Client) ReleaseFields(ctx context.Context, req ReleaseFieldsRequest) (*ActorStateMessage, error) {
	var resp ActorStateMessage
	if err := c.call(ctx, "ReleaseFields", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditActor calls StateService.EditActor
func (c *Client) EditActor(ctx context.Context, req EditActorRequest) (*ActorStateMessage, error) {
	var resp ActorStateMessage
	if err := c.call(ctx, "EditActor", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveDesign calls StateService.SaveDesign
func (c *Client) SaveDesign(ctx context.Context, req SaveDesignRequest) (*SaveDesignResponse, error) {
	var resp SaveDesignResponse
	if err := c.call(ctx, "SaveDesign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CaptureDesign calls StateService.CaptureDesign
func (c *Client) CaptureDesign(ctx context.Context, req CaptureDesignRequest) (*DesignMessage, error) {
	var resp DesignMessage
	if err := c.call(ctx, "CaptureDesign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDesign calls StateService.GetDesign
func (c *Client) GetDesign(ctx context.Context, id string) (*DesignMessage, error) {
	var resp DesignMessage
	if err := c.invoke(ctx, "GetDesign", wrapperspb.String(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListDesigns calls StateService.ListDesigns
func (c *Client) ListDesigns(ctx context.Context) (*ListDesignsResponse, error) {
	var resp ListDesignsResponse
	if err := c.invoke(ctx, "ListDesigns", &emptypb.Empty{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteDesign calls StateService.DeleteDesign
func (c *Client) DeleteDesign(ctx context.Context, id string) error {
	if err := c.cc.Invoke(ctx, fullMethod("DeleteDesign"), wrapperspb.String(id), &emptypb.Empty{}); err != nil {
		return errors.FromGRPCError(err)
	}
	return nil
}

// BindDesign calls StateService.BindDesign
func (c *Client) BindDesign(ctx context.Context, req BindDesignRequest) (*BindDesignResponse, error) {
	var resp BindDesignResponse
	if err := c.call(ctx, "BindDesign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UnbindDesign calls StateService.UnbindDesign
func (c *Client) UnbindDesign(ctx context.Context, actor string) error {
	if err := c.cc.Invoke(ctx, fullMethod("UnbindDesign"), wrapperspb.String(actor), &emptypb.Empty{}); err != nil {
		return errors.FromGRPCError(err)
	}
	return nil
}

// ListBindings calls StateService.ListBindings
func (c *Client) ListBindings(ctx context.Context) (*ListBindingsResponse, error) {
	var resp ListBindingsResponse
	if err := c.invoke(ctx, "ListBindings", &emptypb.Empty{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// call sends a Struct-bodied request
func (c *Client) call(ctx context.Context, method string, req, resp any) error {
	in, err := ToStruct(req)
	if err != nil {
		return err
	}
	return c.invoke(ctx, method, in, resp)
}

// invoke sends in and decodes the Struct response into resp
func (c *Client) invoke(ctx context.Context, method string, in any, resp any) error {
	out := &structpb.Struct{}
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return errors.FromGRPCError(err)
	}
	return FromStruct(out, resp)
}
