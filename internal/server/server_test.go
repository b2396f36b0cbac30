package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/internal/config"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewServerWithConfig(config.Default()).SetupRouter()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckPlagiarismIdenticalTexts(t *testing.T) {
	router := newTestRouter()

	text := "The quick brown fox jumps over the lazy dog"
	w := postJSON(t, router, "/api/check-plagiarism", map[string]string{
		"text1": text,
		"text2": text,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SimilarityScore float64 `json:"similarity_score"`
		Status          string  `json:"status"`
		Details         string  `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 100.0, resp.SimilarityScore)
	assert.Contains(t, resp.Status, "High")
	assert.NotEmpty(t, resp.Details)
}

func TestCheckPlagiarismMissingText(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/check-plagiarism", map[string]string{
		"text1": "",
		"text2": "some text to compare",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCheckDocument(t *testing.T) {
	router := newTestRouter()

	para := "Climate change is reshaping coastal ecosystems around the world every single year."
	w := postJSON(t, router, "/api/check-document", map[string]any{
		"text": para,
		"sources": map[string]string{
			"source.txt": para,
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OverallScore    float64 `json:"overall_score"`
		Status          string  `json:"status"`
		TotalParagraphs int     `json:"total_paragraphs"`
		OllamaEnabled   bool    `json:"ollama_enabled"`
		Results         []struct {
			Paragraph int `json:"paragraph"`
			Matches   []struct {
				Source      string   `json:"source"`
				Similarity  float64  `json:"similarity"`
				OllamaScore *float64 `json:"ollama_score"`
			} `json:"matches"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 100.0, resp.OverallScore)
	assert.Equal(t, 1, resp.TotalParagraphs)
	assert.False(t, resp.OllamaEnabled)
	require.Len(t, resp.Results, 1)
	require.Len(t, resp.Results[0].Matches, 1)
	assert.Equal(t, "source.txt", resp.Results[0].Matches[0].Source)
	assert.Nil(t, resp.Results[0].Matches[0].OllamaScore)
}

func TestCheckDocumentMissingText(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/check-document", map[string]any{
		"text":    "",
		"sources": map[string]string{"a": "b"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadTextFile(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "essay.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Uploaded essay content."))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Filename string `json:"filename"`
		Text     string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "essay.txt", resp.Filename)
	assert.Equal(t, "Uploaded essay content.", resp.Text)
}

func TestUploadUnsupportedFormat(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "data.bin")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x00, 0x01})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ollama_enabled":false`)
}

func TestModelsWhenDisabled(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enabled":false`)

	w = postJSON(t, router, "/api/models", map[string]string{"model": "llama3"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/check-plagiarism", strings.NewReader(""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
