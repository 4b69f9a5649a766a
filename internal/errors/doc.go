// Package errors provides the structured error type used across the item converter.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. The code decides how a caller reacts: conversion failures
// that come from the catalog (ambiguous names, unresolved base items) are
// FailedPrecondition or NotFound and abort the item, malformed requests are
// InvalidArgument, and anything the converter cannot explain is Internal.
//
// # Basic Usage
//
//	err := errors.NotFoundf("could not find base item %q", name).
//	    WithMeta("category", "armor")
//
//	if err := idx.Validate(); err != nil {
//	    return errors.Wrap(err, "failed to build catalog")
//	}
//
// Wrap keeps the code of a wrapped *Error and falls back to Internal for
// foreign errors. WrapWithCode changes it explicitly.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("source", cfg.DefaultSource, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); the code is mapped onto a gRPC
// status and Meta travels as an ErrorInfo detail.
package errors
