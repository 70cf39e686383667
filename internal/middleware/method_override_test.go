// internal/middleware/method_override_test.go
package middleware

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideTestHandler() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/things", func(c *gin.Context) { c.String(http.StatusOK, "created") })
	r.PUT("/things", func(c *gin.Context) {
		c.String(http.StatusOK, "updated name="+c.PostForm("name"))
	})
	r.DELETE("/things", func(c *gin.Context) { c.String(http.StatusOK, "deleted") })
	return MethodOverride(r)
}

func TestMethodOverrideURLEncoded(t *testing.T) {
	h := overrideTestHandler()

	form := url.Values{"_method": {"DELETE"}}
	req := httptest.NewRequest("POST", "/things", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "deleted", w.Body.String())
}

func TestMethodOverrideMultipartKeepsForm(t *testing.T) {
	h := overrideTestHandler()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("_method", "put"))
	require.NoError(t, mw.WriteField("name", "CBR150R"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/things", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "updated name=CBR150R", w.Body.String())
}

func TestMethodOverrideLeavesURLEncodedBodyReadable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var seen string
	r.POST("/hooks", func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seen = string(raw)
		c.Status(http.StatusOK)
	})
	h := MethodOverride(r)

	payload := "payload=" + url.QueryEscape(`{"ref":"refs/heads/main"}`)
	req := httptest.NewRequest("POST", "/hooks", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, seen)
}

func TestMethodOverrideIgnoresPlainPost(t *testing.T) {
	h := overrideTestHandler()

	req := httptest.NewRequest("POST", "/things", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "created", w.Body.String())
}

func TestMethodOverrideRefusesUnsafeVerbs(t *testing.T) {
	h := overrideTestHandler()

	form := url.Values{"_method": {"CONNECT"}}
	req := httptest.NewRequest("POST", "/things", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "created", w.Body.String())
}
