// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler writes the request body back as the response.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(body)
})

func TestGZip(t *testing.T) {
	const payload = `{"titulo":"Tarta","ingredientes":"manzana"}`

	tests := []struct {
		name           string
		gzipRequest    bool
		acceptGzip     bool
		wantCompressed bool
	}{
		{name: "plain in, plain out"},
		{name: "plain in, gzip out", acceptGzip: true, wantCompressed: true},
		{name: "gzip in, plain out", gzipRequest: true},
		{name: "gzip in, gzip out", gzipRequest: true, acceptGzip: true, wantCompressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(payload)
			if tt.gzipRequest {
				body = bytes.NewReader(gzipBytes(t, payload))
			}
			req := httptest.NewRequest(http.MethodPost, "/recetas/crear", body)
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			if tt.acceptGzip {
				req.Header.Set("Accept-Encoding", "gzip, deflate")
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler).ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
			if tt.wantCompressed {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, rec.Body.String())
			}
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/usuarios/login", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	called := false

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.False(t, called)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidJSON, decodeError(t, rec))
}

func TestGZip_EmptyResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/recetas/eliminar/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(echoHandler)
	payload := strings.Repeat("receta ", 100)
	compressed := gzipBytes(t, payload)

	recorders := make([]*httptest.ResponseRecorder, 20)
	var wg sync.WaitGroup
	for i := range recorders {
		recorders[i] = httptest.NewRecorder()
		wg.Add(1)
		go func(rec *httptest.ResponseRecorder) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(compressed))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			handler.ServeHTTP(rec, req)
		}(recorders[i])
	}
	wg.Wait()

	for _, rec := range recorders {
		assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
	}
}

func TestGZipResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Length", "10")
	gw := &gzipResponseWriter{ResponseWriter: rec, gzipWriter: gzip.NewWriter(io.Discard)}

	gw.WriteHeader(http.StatusAccepted)
	gw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Empty(t, rec.Header().Get("Content-Length"))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { closed = true }}

	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
