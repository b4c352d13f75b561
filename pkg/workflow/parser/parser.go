package parser

import (
	"fmt"
	"os"

	"gantry-hq/gantry/pkg/workflow/ast"
	wferrors "gantry-hq/gantry/pkg/workflow/errors"
)

// Parser parses workflow files into the typed workflow model. It runs the
// position-tracking loader and the model builder in sequence; either stage
// failing stops the pipeline for that file with a typed error.
type Parser struct {
	maxFileSize int64 // Maximum file size in bytes (default: 1MB)
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 1024 * 1024, // 1MB
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// Parse parses the workflow file at the given path.
func (p *Parser) Parse(path string) (*ast.Workflow, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, wferrors.IO(fmt.Sprintf("failed to access file: %v", err), path)
	}
	if fileInfo.Size() > p.maxFileSize {
		return nil, wferrors.IO(
			fmt.Sprintf("file size %d exceeds maximum %d bytes", fileInfo.Size(), p.maxFileSize), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wferrors.IO(fmt.Sprintf("failed to read file: %v", err), path)
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses workflow YAML from a byte slice. Errors are enriched
// with source context for diagnostics.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ast.Workflow, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, wferrors.IO(
			fmt.Sprintf("data size %d exceeds maximum %d bytes", len(data), p.maxFileSize), sourcePath)
	}

	root, err := Load(data, sourcePath)
	if err != nil {
		return nil, withContext(err, data)
	}

	wf, err := Build(root, sourcePath)
	if err != nil {
		return nil, withContext(err, data)
	}

	return wf, nil
}

// withContext attaches surrounding source lines to typed errors.
func withContext(err error, data []byte) error {
	if e, ok := err.(*wferrors.Error); ok {
		return wferrors.WithContext(e, data)
	}
	return err
}
