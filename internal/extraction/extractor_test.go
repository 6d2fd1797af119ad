package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/upload"
)

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := Extract([]byte("hello"), "text/plain")
	require.Error(t, err)

	var typeErr *UnsupportedFileTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "text/plain", typeErr.MIMEType)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf"), upload.MIMEPDF)
	require.Error(t, err)

	var extractErr *ExtractionFailedError
	require.ErrorAs(t, err, &extractErr)
	// user-facing message stays opaque
	assert.Equal(t, "Failed to extract text from file", err.Error())
	// but the cause survives for logs
	assert.Error(t, extractErr.Unwrap())
}

func TestExtract_CorruptDOCX(t *testing.T) {
	_, err := Extract([]byte("not a zip archive"), upload.MIMEDOCX)
	require.Error(t, err)

	var extractErr *ExtractionFailedError
	require.ErrorAs(t, err, &extractErr)
}

func TestExtract_DispatchIsClosed(t *testing.T) {
	// the dispatch map covers exactly the two supported types
	assert.Len(t, dispatch, 2)
	assert.Contains(t, dispatch, upload.MIMEPDF)
	assert.Contains(t, dispatch, upload.MIMEDOCX)
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  line one\n\n\tline   two \r\n three "
	assert.Equal(t, "line one line two three", normalizeWhitespace(in))
}

func TestSafeExtract_RecoverFromPanic(t *testing.T) {
	panicking := func([]byte) (string, error) { panic("boom") }

	_, err := safeExtract(panicking, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extractor panic")
}

func TestExtract_ShortTextIsInsufficient(t *testing.T) {
	// stub an extractor that succeeds but returns almost nothing
	orig := dispatch[upload.MIMEPDF]
	dispatch[upload.MIMEPDF] = func([]byte) (string, error) { return "too short", nil }
	defer func() { dispatch[upload.MIMEPDF] = orig }()

	_, err := Extract([]byte("irrelevant"), upload.MIMEPDF)
	require.Error(t, err)

	var contentErr *InsufficientContentError
	require.ErrorAs(t, err, &contentErr)
	assert.Less(t, contentErr.Length, MinTextLength)
}

func TestExtract_LongTextPasses(t *testing.T) {
	long := strings.Repeat("experienced software engineer ", 10)
	orig := dispatch[upload.MIMEPDF]
	dispatch[upload.MIMEPDF] = func([]byte) (string, error) { return long, nil }
	defer func() { dispatch[upload.MIMEPDF] = orig }()

	text, err := Extract([]byte("irrelevant"), upload.MIMEPDF)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(text), MinTextLength)
}
