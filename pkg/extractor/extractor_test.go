package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"novamind-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForFile(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"notes.pdf", KindPDF, false},
		{"NOTES.PDF", KindPDF, false},
		{"scan.png", KindImage, false},
		{"scan.JPG", KindImage, false},
		{"scan.jpeg", KindImage, false},
		{"scan.bmp", KindImage, false},
		{"scan.TIFF", KindImage, false},
		{"scan.tif", "", true},
		{"essay.docx", "", true},
		{"README", "", true},
		{"archive.pdf.zip", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindForFile(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFileType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetFor(t *testing.T) {
	pdfEx := NewPDFExtractor(logger.NewNopLogger())
	s := Set{PDF: pdfEx}

	got, err := s.For(KindPDF)
	require.NoError(t, err)
	assert.Same(t, pdfEx, got)

	_, err = s.For(KindImage)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func textContent(text string) string {
	return fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
}

// buildPDF writes one page per content stream, sharing a Helvetica font,
// with a correct xref table.
func buildPDF(contents ...string) []byte {
	kids := make([]string, len(contents))
	for i := range contents {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(contents)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	for i, content := range contents {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func minimalPDF(text string) []byte {
	return buildPDF(textContent(text))
}

func TestPDFExtractorReadsTextLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploaded.pdf")
	require.NoError(t, os.WriteFile(path, minimalPDF("Hello Study Notes"), 0o644))

	res := NewPDFExtractor(logger.NewNopLogger()).Extract(context.Background(), path)

	require.Equal(t, StatusOK, res.Status, "err: %v", res.Err)
	assert.True(t, res.HasText())
	assert.Contains(t, res.Text, "Hello Study Notes")
	assert.Equal(t, 1, res.Pages)
	assert.Zero(t, res.FailedPages)
}

func TestPDFExtractorJoinsPagesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploaded.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(
		textContent("Page one"),
		textContent("Page two"),
		textContent("Page three"),
	), 0o644))

	res := NewPDFExtractor(logger.NewNopLogger()).Extract(context.Background(), path)

	require.Equal(t, StatusOK, res.Status, "err: %v", res.Err)
	assert.Equal(t, []string{"Page one", "Page two", "Page three"}, strings.Split(res.Text, "\n"))
	assert.Equal(t, 3, res.Pages)
	assert.Zero(t, res.FailedPages)
}

func TestPDFExtractorSkipsUnreadablePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploaded.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(
		textContent("Page one"),
		"BT /F1 12 Tf 72 720 Td Tj ET", // Tj without its string operand
		textContent("Page three"),
	), 0o644))

	res := NewPDFExtractor(logger.NewNopLogger()).Extract(context.Background(), path)

	require.Equal(t, StatusOK, res.Status, "err: %v", res.Err)
	assert.Equal(t, []string{"Page one", "Page three"}, strings.Split(res.Text, "\n"))
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, 1, res.FailedPages)
}

func TestPDFExtractorCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploaded.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	res := NewPDFExtractor(logger.NewNopLogger()).Extract(context.Background(), path)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Error(t, res.Err)
	assert.Empty(t, res.Text)
	assert.False(t, res.HasText())
}

func TestPDFExtractorMissingFile(t *testing.T) {
	res := NewPDFExtractor(logger.NewNopLogger()).Extract(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))

	assert.Equal(t, StatusFailed, res.Status)
	assert.Empty(t, res.Text)
}
