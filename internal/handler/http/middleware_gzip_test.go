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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, body io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		requestBody     string
		compressRequest bool
		wantStatus      int
		wantGzipped     bool
	}{
		{name: "compress when client accepts gzip", acceptEncoding: "gzip", wantStatus: http.StatusOK, wantGzipped: true},
		{name: "plain when client does not accept gzip", wantStatus: http.StatusOK},
		{name: "gzip among other encodings", acceptEncoding: "deflate, gzip;q=1.0, br", wantStatus: http.StatusOK, wantGzipped: true},
		{name: "decompress request body", contentEncoding: "gzip", requestBody: `{"title":"Grillabend"}`,
			compressRequest: true, wantStatus: http.StatusOK},
		{name: "decompress request and compress response", acceptEncoding: "gzip", contentEncoding: "gzip",
			requestBody: `{"title":"Grillabend"}`, compressRequest: true, wantStatus: http.StatusOK, wantGzipped: true},
		{name: "broken gzip request body", contentEncoding: "gzip", requestBody: "not gzip", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.requestBody, string(body))
				assert.Empty(t, r.Header.Get("Content-Encoding"))

				w.WriteHeader(http.StatusOK)
				w.Write([]byte("echo:" + string(body)))
			})

			var body io.Reader = strings.NewReader(tt.requestBody)
			if tt.compressRequest {
				body = gzipped(t, tt.requestBody)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/bulletin", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "echo:"+tt.requestBody, gunzip(t, rr.Body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "echo:"+tt.requestBody, rr.Body.String())
			}
		})
	}
}

func TestGZip_NoContentStaysEmpty(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodDelete, "/api/reminders/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_LargeBodyImplicitStatus(t *testing.T) {
	payload := strings.Repeat(`{"name":"Rösti"},`, 2000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	req := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Less(t, rr.Body.Len(), len(payload))
	assert.Equal(t, payload, gunzip(t, rr.Body))
	assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")
}
