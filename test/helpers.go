// Package test provides helpers used by tests across the backend.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/balance-pilot/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path for a temporary database that is cleaned up
// with the test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "backend.db")
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	// If the body is a string, use it as is, otherwise marshal it
	switch b := body.(type) {
	case string:
		byteBuffer = bytes.NewBufferString(b)
	case nil:
		byteBuffer = bytes.NewBuffer([]byte{})
	default:
		marshalled, err := json.Marshal(body)
		if err != nil {
			require.FailNow(t, "Request body could not be marshalled", "%v: %#v", err, body)
		}
		byteBuffer = bytes.NewBuffer(marshalled)
	}

	r, err := router.Router()
	if err != nil {
		require.FailNow(t, "Router could not be initialized")
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// UploadFile posts a multipart form with the contents as the "file" field.
func UploadFile(t *testing.T, url, filename, contents string) httptest.ResponseRecorder {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	part, err := writer.CreateFormFile("file", filename)
	require.Nil(t, err)

	_, err = io.WriteString(part, contents)
	require.Nil(t, err)
	require.Nil(t, writer.Close())

	return Request(t, http.MethodPost, url, buffer.String(), map[string]string{
		"Content-Type": writer.FormDataContentType(),
	})
}

// AssertHTTPStatus verifies the status code of a recorded response.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	assert.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		require.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}
