package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

// Message field names
const (
	fieldText         = "text"
	fieldSource       = "source"
	fieldPage         = "page"
	fieldTitleCase    = "title_case"
	fieldKind         = "kind"
	fieldItem         = "item"
	fieldWarnings     = "warnings"
	fieldConversionID = "conversion_id"
)

// ConvertItemRequest is the decoded form of a ConvertItem request
type ConvertItemRequest struct {
	Text      string
	Source    string
	Page      int
	TitleCase bool
}

// ToStruct encodes the request as a Struct message
func (r *ConvertItemRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldText:      structpb.NewStringValue(r.Text),
			fieldSource:    structpb.NewStringValue(r.Source),
			fieldPage:      structpb.NewNumberValue(float64(r.Page)),
			fieldTitleCase: structpb.NewBoolValue(r.TitleCase),
		},
	}
}

// ParseConvertItemRequest decodes a request message
func ParseConvertItemRequest(req *structpb.Struct) (*ConvertItemRequest, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	fields := req.GetFields()
	out := &ConvertItemRequest{}

	if v, ok := fields[fieldText]; ok {
		if _, isString := v.GetKind().(*structpb.Value_StringValue); !isString {
			return nil, errors.InvalidArgument("text must be a string")
		}
		out.Text = v.GetStringValue()
	}
	if v, ok := fields[fieldSource]; ok {
		out.Source = v.GetStringValue()
	}
	if v, ok := fields[fieldPage]; ok {
		page := v.GetNumberValue()
		if page < 0 || page != float64(int(page)) {
			return nil, errors.InvalidArgumentf("page must be a non-negative integer, got %v", page)
		}
		out.Page = int(page)
	}
	if v, ok := fields[fieldTitleCase]; ok {
		out.TitleCase = v.GetBoolValue()
	}

	return out, nil
}

// ConvertItemResponse is the decoded form of a ConvertItem response
type ConvertItemResponse struct {
	ConversionID string
	Kind         string
	Item         map[string]any
	Warnings     []string
}

// ToStruct encodes the response as a Struct message
func (r *ConvertItemResponse) ToStruct() (*structpb.Struct, error) {
	itemStruct, err := fieldsToStruct(r.Item)
	if err != nil {
		return nil, err
	}

	warnings := make([]*structpb.Value, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		warnings = append(warnings, structpb.NewStringValue(w))
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldConversionID: structpb.NewStringValue(r.ConversionID),
			fieldKind:         structpb.NewStringValue(r.Kind),
			fieldItem:         structpb.NewStructValue(itemStruct),
			fieldWarnings:     structpb.NewListValue(&structpb.ListValue{Values: warnings}),
		},
	}, nil
}

// ParseConvertItemResponse decodes a response message
func ParseConvertItemResponse(resp *structpb.Struct) *ConvertItemResponse {
	fields := resp.GetFields()

	out := &ConvertItemResponse{
		ConversionID: fields[fieldConversionID].GetStringValue(),
		Kind:         fields[fieldKind].GetStringValue(),
		Item:         fields[fieldItem].GetStructValue().AsMap(),
	}
	for _, w := range fields[fieldWarnings].GetListValue().GetValues() {
		out.Warnings = append(out.Warnings, w.GetStringValue())
	}
	return out
}

// fieldsToStruct goes through JSON so typed slices and nested maps become Struct values
func fieldsToStruct(fields map[string]any) (*structpb.Struct, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode item")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode item")
	}
	return out, nil
}
