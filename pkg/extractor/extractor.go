// Package extractor turns uploaded files into plain text.
//
// Extractors never return a Go error and never panic: every outcome is a
// Result whose Status tells an empty document apart from a failed extraction.
package extractor

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".tiff": {},
}

// KindForFile picks the extractor kind from the file name's extension, case-insensitively.
func KindForFile(name string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".pdf" {
		return KindPDF, nil
	}
	if _, ok := imageExtensions[ext]; ok {
		return KindImage, nil
	}
	return "", ErrUnsupportedFileType
}

type Status string

const (
	StatusOK     Status = "ok"
	StatusEmpty  Status = "empty"
	StatusFailed Status = "failed"
)

type Result struct {
	Text   string
	Status Status
	// Err is set when Status is StatusFailed.
	Err error
	// Pages counts pages (PDF) or images (OCR) looked at; FailedPages those skipped on error.
	Pages       int
	FailedPages int
}

// HasText reports whether the result carries usable text.
func (r Result) HasText() bool {
	return r.Status == StatusOK
}

func textResult(text string, pages, failed int) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Status: StatusEmpty, Pages: pages, FailedPages: failed}
	}
	return Result{Text: text, Status: StatusOK, Pages: pages, FailedPages: failed}
}

func failedResult(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

type Extractor interface {
	Extract(ctx context.Context, path string) Result
}

// Set holds one extractor per supported kind.
type Set struct {
	PDF   Extractor
	Image Extractor
}

func (s Set) For(kind Kind) (Extractor, error) {
	switch kind {
	case KindPDF:
		if s.PDF != nil {
			return s.PDF, nil
		}
	case KindImage:
		if s.Image != nil {
			return s.Image, nil
		}
	}
	return nil, ErrUnsupportedFileType
}
