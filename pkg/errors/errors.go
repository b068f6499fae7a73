package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or input validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError reports that content could not be encoded into a QR artifact.
type RenderError struct {
	Content string
	Size    int
	Err     error
}

// NewRenderError constructs a RenderError.
func NewRenderError(content string, size int, err error) error {
	return &RenderError{Content: content, Size: size, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("render error (%d chars at %dpx): %v", len(e.Content), e.Size, e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError indicates a clipboard write that no backend accepted.
type ClipboardError struct {
	Backend string
	Err     error
}

// NewClipboardError constructs a ClipboardError for the given backend.
func NewClipboardError(backend string, err error) error {
	return &ClipboardError{Backend: backend, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.Backend != "" {
		return fmt.Sprintf("clipboard error [%s]: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DownloadStage names the step of the export pipeline that failed.
type DownloadStage string

const (
	StageSerialize DownloadStage = "serialize"
	StageRasterize DownloadStage = "rasterize"
	StageEncode    DownloadStage = "encode"
	StageSave      DownloadStage = "save"
)

// DownloadError represents a failure while exporting an artifact to PNG.
type DownloadError struct {
	Stage DownloadStage
	Err   error
}

// NewDownloadError constructs a DownloadError.
func NewDownloadError(stage DownloadStage, err error) error {
	return &DownloadError{Stage: stage, Err: err}
}

func (e *DownloadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("download error during %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("download error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *DownloadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
