package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/upload"
)

const handlerResumeJSON = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+2348012345678",
	"skills": ["Go", "PostgreSQL"],
	"experience": [{"title": "Engineer", "company": "Flutterwave", "duration": "2021 - 2024", "description": "Payments."}],
	"education": [{"degree": "BSc Computer Science", "institution": "University of Lagos", "year": "2020"}],
	"summary": "Backend engineer with four years of experience."
}`

type staticLLM struct {
	reply string
}

func (f *staticLLM) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.reply, nil
}

func (f *staticLLM) Close() error { return nil }

// newHandlerServer builds a Server wired with fakes for the stages that would
// otherwise need a real model or database.
func newHandlerServer(t *testing.T, reply string) *Server {
	t.Helper()
	ring, err := llm.NewKeyRing([]string{"test-key"})
	require.NoError(t, err)
	parser := parsing.NewParserWithFactory(ring, llm.DefaultConfig(),
		func(_ context.Context, _ *llm.Config, _ string) (llm.Client, error) {
			return &staticLLM{reply: reply}, nil
		})
	engine := scoring.NewEngineWithSeed(1)
	analyzer := pipeline.NewAnalyzerWithExtractor(
		func(data []byte, _ string) (string, error) { return string(data), nil },
		parser, engine, nil)
	return &Server{analyzer: analyzer, engine: engine}
}

// multipartBody builds a multipart request body with resume files and an
// optional criteria field.
func multipartBody(t *testing.T, field string, files map[string][]byte, criteria string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, data := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
		header.Set("Content-Type", upload.MIMEPDF)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	if criteria != "" {
		require.NoError(t, writer.WriteField("criteria", criteria))
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleAnalyze(t *testing.T) {
	server := newHandlerServer(t, handlerResumeJSON)

	body, contentType := multipartBody(t, "resume", map[string][]byte{
		"jane.pdf": []byte("Jane Doe, backend engineer. Go and PostgreSQL. Lagos."),
	}, `{"requiredSkills": ["Go"]}`)

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	server.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "jane.pdf", response.FileName)
	require.NotNil(t, response.Resume)
	assert.Equal(t, "Jane Doe", response.Resume.Name)
	require.NotNil(t, response.Analysis)
	assert.GreaterOrEqual(t, response.Analysis.OverallScore, 0)
	assert.LessOrEqual(t, response.Analysis.OverallScore, 100)
}

func TestHandleAnalyze_NoFile(t *testing.T) {
	server := newHandlerServer(t, handlerResumeJSON)

	body, contentType := multipartBody(t, "resume", nil, "")

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	server.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No resume file provided")
}

func TestHandleAnalyze_InvalidCriteria(t *testing.T) {
	server := newHandlerServer(t, handlerResumeJSON)

	tests := []struct {
		name     string
		criteria string
	}{
		{name: "malformed JSON", criteria: "{not json"},
		{name: "bad experience level", criteria: `{"experienceLevel": "principal"}`},
		{name: "weight out of range", criteria: `{"weights": {"technicalSkills": 1.5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, "resume", map[string][]byte{
				"jane.pdf": []byte("resume text"),
			}, tt.criteria)

			req := httptest.NewRequest(http.MethodPost, "/api/resumes/analyze", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			server.handleAnalyze(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleAnalyze_UnsupportedFileType(t *testing.T) {
	server := newHandlerServer(t, handlerResumeJSON)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="resume"; filename="notes.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	server.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only PDF and DOCX files are supported")
}

func TestHandleBatch(t *testing.T) {
	server := newHandlerServer(t, handlerResumeJSON)

	body, contentType := multipartBody(t, "resumes", map[string][]byte{
		"a.pdf": []byte("resume one text"),
		"b.pdf": []byte("resume two text"),
	}, "")

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/batch", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	server.handleBatch(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report types.BatchReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.TotalProcessed)
	assert.Equal(t, 2, report.Successful)
	assert.Equal(t, 0, report.Failed)
	assert.Len(t, report.Results, 2)
}

func TestHandleBatch_NoFiles(t *testing.T) {
	server := newHandlerServer(t, handlerResumeJSON)

	body, contentType := multipartBody(t, "resumes", nil, "")

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/batch", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	server.handleBatch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No files provided for batch analysis.")
}

func TestHandleDeleteCandidate_InvalidID(t *testing.T) {
	server := newHandlerServer(t, handlerResumeJSON)

	req := httptest.NewRequest(http.MethodDelete, "/api/candidates/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()
	server.handleDeleteCandidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid candidate ID")
}

func TestParseCriteria(t *testing.T) {
	t.Run("empty yields defaults", func(t *testing.T) {
		criteria, err := parseCriteria("")
		require.NoError(t, err)
		assert.Empty(t, criteria.RequiredSkills)
		assert.Nil(t, criteria.Weights)
	})

	t.Run("valid criteria", func(t *testing.T) {
		criteria, err := parseCriteria(`{"requiredSkills": ["Go"], "experienceLevel": "senior"}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"Go"}, criteria.RequiredSkills)
		assert.Equal(t, "senior", criteria.ExperienceLevel)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := parseCriteria("{broken")
		assert.Error(t, err)
	})

	t.Run("invalid education level", func(t *testing.T) {
		_, err := parseCriteria(`{"educationLevel": "kindergarten"}`)
		assert.Error(t, err)
	})
}

func TestStatusForPipelineError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid file type", err: &upload.InvalidFileTypeError{MIMEType: "text/plain"}, want: http.StatusBadRequest},
		{name: "file too large", err: &upload.FileTooLargeError{Size: 6 << 20}, want: http.StatusBadRequest},
		{name: "extraction failed", err: &extraction.ExtractionFailedError{}, want: http.StatusBadRequest},
		{name: "empty text", err: &parsing.EmptyTextError{}, want: http.StatusBadRequest},
		{name: "schema rejection", err: &pipeline.SchemaRejectionError{}, want: http.StatusUnprocessableEntity},
		{name: "validation detail", err: &schemas.ValidationError{}, want: http.StatusUnprocessableEntity},
		{name: "credentials exhausted", err: &parsing.AllCredentialsExhaustedError{Attempts: 3}, want: http.StatusServiceUnavailable},
		{name: "invalid response format", err: &parsing.InvalidResponseFormatError{}, want: http.StatusBadGateway},
		{name: "endpoint error", err: &parsing.EndpointError{Message: "upstream"}, want: http.StatusBadGateway},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForPipelineError(tt.err))
		})
	}
}
