// Package mcp provides an MCP (Model Context Protocol) server adapter for wingforge.
// It enables AI assistants like Claude to generate wing models and browse the
// airfoil dataset and the generated-model catalog.
package mcp

import "errors"

// ErrMissingGeneratorService is returned when the generator service is not provided.
var ErrMissingGeneratorService = errors.New("mcp: generator service is required")

// ErrMissingDatasetService is returned when the dataset service is not provided.
var ErrMissingDatasetService = errors.New("mcp: dataset service is required")
