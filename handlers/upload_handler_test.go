package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, _ = fw.Write(content)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUpload_MissingFilePart(t *testing.T) {
	svc := new(MockUploadService)
	r := buildRouter(http.MethodPost, "/api/upload", NewUploadHandler(svc, 1024).Upload)

	body, contentType := multipartBody(t, "image", "", nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.ValidationError), resp["type"])
	svc.AssertNotCalled(t, "Process")
}

func TestUpload_FieldMustBeNamedImage(t *testing.T) {
	svc := new(MockUploadService)
	r := buildRouter(http.MethodPost, "/api/upload", NewUploadHandler(svc, 1024).Upload)

	body, contentType := multipartBody(t, "file", "scontrino.jpg", []byte("fake-image"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["detail"], "image")
	svc.AssertNotCalled(t, "Process")
}

func TestUpload_OversizeRejectedBeforeProcessing(t *testing.T) {
	svc := new(MockUploadService)
	r := buildRouter(http.MethodPost, "/api/upload", NewUploadHandler(svc, 4).Upload)

	body, contentType := multipartBody(t, "image", "scontrino.jpg", []byte("more than four bytes"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Process")
}

func TestUpload_Success(t *testing.T) {
	svc := new(MockUploadService)
	svc.On("Process", mock.Anything, "scontrino.jpg", []byte("fake-image")).
		Return(&types.UploadResult{
			ImageURL: "/uploads/ricevute/20250315_103000_scontrino.jpg",
			OCRData:  types.ReceiptData{Date: "15/03/2025"},
		}, nil)

	r := buildRouter(http.MethodPost, "/api/upload", NewUploadHandler(svc, 1024).Upload)

	body, contentType := multipartBody(t, "image", "scontrino.jpg", []byte("fake-image"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "/uploads/ricevute/20250315_103000_scontrino.jpg", data["image_url"])

	svc.AssertExpectations(t)
}
