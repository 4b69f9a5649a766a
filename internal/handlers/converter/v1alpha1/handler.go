// Package v1alpha1 handles the item converter grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/orchestrators/converter"
)

// HandlerConfig holds dependencies for the converter handler
type HandlerConfig struct {
	ConverterService converter.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.ConverterService == nil {
		return errors.InvalidArgument("converter service is required")
	}
	return nil
}

// Handler implements the item converter gRPC service
type Handler struct {
	converterService converter.Service
}

var _ ItemConverterServiceServer = (*Handler)(nil)

// NewHandler creates a new converter handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		converterService: cfg.ConverterService,
	}, nil
}

// ConvertItem converts one pasted item description
func (h *Handler) ConvertItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := ParseConvertItemRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Text == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("text is required"))
	}

	output, err := h.converterService.ConvertItem(ctx, &converter.ConvertItemInput{
		Text:      in.Text,
		Source:    in.Source,
		Page:      in.Page,
		TitleCase: in.TitleCase,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ConvertItemResponse{
		ConversionID: output.ConversionID,
		Kind:         string(output.Result.Kind()),
		Item:         output.Result.Fields(),
		Warnings:     output.Warnings,
	}

	out, err := resp.ToStruct()
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to build response"))
	}
	return out, nil
}
