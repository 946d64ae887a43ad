// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context logger writes to buf.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		status           int
		body             string
		checkLogContains []string
	}{
		{
			name:   "created",
			method: http.MethodPost,
			path:   "/recetas/crear",
			status: http.StatusCreated,
			body:   `{"mensaje":"ok"}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"uri":"/recetas/crear"`,
				`"status":201`,
				`"size":16`,
				`"duration":`,
			},
		},
		{
			name:             "forbidden is warn",
			method:           http.MethodPut,
			path:             "/recetas/modificar/1",
			status:           http.StatusForbidden,
			checkLogContains: []string{`"level":"warn"`, `"status":403`},
		},
		{
			name:             "server error is error",
			method:           http.MethodGet,
			path:             "/recetas/",
			status:           http.StatusInternalServerError,
			checkLogContains: []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NoStatusWrittenIsOK(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/version", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusServiceUnavailable))
}
