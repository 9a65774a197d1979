package middleware

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

const testMaxFileSize = 6 * 1024 * 1024

func testConfig() UploadConfig {
	return UploadConfig{
		MaxFileSize:  testMaxFileSize,
		AllowedTypes: []string{"image/png", "image/jpeg", "image/jpg", "image/gif"},
	}
}

// multipartBody builds a multipart request body with the given files under
// the image field. Each entry is content-type → payload.
func multipartBody(t *testing.T, files []struct {
	name        string
	contentType string
	data        []byte
}) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func singleImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	return multipartBody(t, []struct {
		name        string
		contentType string
		data        []byte
	}{{name: "avatar.png", contentType: contentType, data: data}})
}

func runUpload(t *testing.T, body *bytes.Buffer, contentType string, next echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/signup", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return FileUpload(testConfig())(next)(c)
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestFileUpload_StagesFileAndCleansUp(t *testing.T) {
	body, ct := singleImage(t, "image/png", []byte("png-bytes"))

	var stagedPath string
	err := runUpload(t, body, ct, func(c echo.Context) error {
		path, ok := c.Get(ImagePathKey).(string)
		if !ok || path == "" {
			t.Fatal("expected staged image path in context")
		}
		stagedPath = path

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("staged file must exist while the handler runs: %v", err)
		}
		if string(data) != "png-bytes" {
			t.Errorf("staged content mismatch: %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	if _, err := os.Stat(stagedPath); !os.IsNotExist(err) {
		t.Error("staged file must be removed after the handler returns")
	}
}

func TestFileUpload_CleansUpOnHandlerFailure(t *testing.T) {
	body, ct := singleImage(t, "image/png", []byte("png-bytes"))

	var stagedPath string
	handlerErr := errors.New("downstream failure")
	err := runUpload(t, body, ct, func(c echo.Context) error {
		stagedPath, _ = c.Get(ImagePathKey).(string)
		return handlerErr
	})
	if !errors.Is(err, handlerErr) {
		t.Fatalf("expected handler error passed through, got %v", err)
	}

	if _, err := os.Stat(stagedPath); !os.IsNotExist(err) {
		t.Error("staged file must be removed even when the handler fails")
	}
}

func TestFileUpload_RejectsWrongType(t *testing.T) {
	body, ct := singleImage(t, "application/pdf", []byte("%PDF"))

	err := runUpload(t, body, ct, func(c echo.Context) error {
		t.Fatal("handler must not run for a rejected file")
		return nil
	})
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if !strings.Contains(err.Error(), "invalid file type") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestFileUpload_RejectsOversizedFile(t *testing.T) {
	body, ct := singleImage(t, "image/png", bytes.Repeat([]byte("x"), testMaxFileSize+1))

	err := runUpload(t, body, ct, func(c echo.Context) error {
		t.Fatal("handler must not run for a rejected file")
		return nil
	})
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if !strings.Contains(err.Error(), "file size cannot exceed") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestFileUpload_RejectsMultipleFiles(t *testing.T) {
	body, ct := multipartBody(t, []struct {
		name        string
		contentType string
		data        []byte
	}{
		{name: "a.png", contentType: "image/png", data: []byte("a")},
		{name: "b.png", contentType: "image/png", data: []byte("b")},
	})

	err := runUpload(t, body, ct, func(c echo.Context) error {
		t.Fatal("handler must not run for a rejected request")
		return nil
	})
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if !strings.Contains(err.Error(), "only one image file") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestFileUpload_PassesThroughWithoutImage(t *testing.T) {
	// Multipart form with no image field at all.
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if err := w.WriteField("username", "alice"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	called := false
	err := runUpload(t, body, w.FormDataContentType(), func(c echo.Context) error {
		called = true
		if c.Get(ImagePathKey) != nil {
			t.Error("no image path may be set without an image")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Error("handler must run for image-less requests")
	}
}

func TestFileUpload_PassesThroughNonMultipart(t *testing.T) {
	called := false
	err := runUpload(t, bytes.NewBufferString(`{"username":"alice"}`), echo.MIMEApplicationJSON, func(c echo.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Error("handler must run for JSON requests")
	}
}
