package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/skylt-tv/signage-manager/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, filename, contentType string, payload []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadVideoRoundTrip(t *testing.T) {
	cfg := testConfig()
	provider := storage.NewLocalProvider(t.TempDir(), "https://cdn.example.com")
	h := newTestHandler(t, cfg, nil, provider)

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, uploadRequest(t, "dagens rätt.mp4", "video/mp4", []byte("fake video bytes")))

	var resp struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Data    videoPayload `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success, resp.Message)
	assert.True(t, strings.HasSuffix(resp.Data.Name, "-dagens_ratt.mp4"))

	// 上传成功后在列表里可以看到
	rec = httptest.NewRecorder()
	h.ListVideos(rec, httptest.NewRequest(http.MethodGet, "/videos", nil))

	var listResp struct {
		Success bool           `json:"success"`
		Data    []videoPayload `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listResp))
	require.True(t, listResp.Success)
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, resp.Data.Name, listResp.Data[0].Name)
}

func TestUploadVideoRejectsUnsupportedType(t *testing.T) {
	cfg := testConfig()
	provider := storage.NewLocalProvider(t.TempDir(), "https://cdn.example.com")
	h := newTestHandler(t, cfg, nil, provider)

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, uploadRequest(t, "reklam.avi", "video/x-msvideo", []byte("x")))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "V001")
}

func TestUploadVideoRejectsOversizedBody(t *testing.T) {
	cfg := testConfig() // 上限 1MB
	provider := storage.NewLocalProvider(t.TempDir(), "https://cdn.example.com")
	h := newTestHandler(t, cfg, nil, provider)

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, uploadRequest(t, "stor.mp4", "video/mp4", make([]byte, 3<<20)))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "V002")
}

func TestUploadVideoRejectsNonMultipartBody(t *testing.T) {
	cfg := testConfig()
	provider := storage.NewLocalProvider(t.TempDir(), "https://cdn.example.com")
	h := newTestHandler(t, cfg, nil, provider)

	// 不是 multipart 请求，报普通的请求错误而不是大小超限
	rec := httptest.NewRecorder()
	h.UploadVideo(rec, httptest.NewRequest(http.MethodPost, "/videos", strings.NewReader("not a form")))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.NotContains(t, resp.Message, "V002")
}
