//go:build !tesseract_exec

package extractor

import (
	"context"
	"testing"

	"novamind-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestGosseractMissingTraineddataFails(t *testing.T) {
	ex := NewOCRExtractor(OCRConfig{Language: "eng", TessdataPrefix: t.TempDir()}, logger.NewNopLogger())
	assert.Equal(t, "gosseract", ex.engine)

	res := ex.Extract(context.Background(), writeImage(t))

	assert.Equal(t, StatusFailed, res.Status)
	assert.Error(t, res.Err)
	assert.Empty(t, res.Text)
}
