package middleware

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ImagePathKey is the context key under which the middleware stores the
// local temp path of the uploaded image for the downstream handler.
const ImagePathKey = "upload_image_path"

const imageField = "image"

// UploadConfig controls the file constraints enforced before any pipeline
// step runs.
type UploadConfig struct {
	// MaxFileSize in bytes. Files larger than this are rejected.
	MaxFileSize int64
	// AllowedTypes is the MIME allow-list (e.g. image/png, image/jpeg, image/gif).
	AllowedTypes []string
}

// FileUpload extracts a single image attachment from a multipart request,
// enforces the MIME allow-list and size cap, writes the file to the OS temp
// dir, and exposes its path via ImagePathKey. The temp file is removed after
// the handler returns, on every exit path, success or failure.
//
// Non-multipart requests and multipart requests without an image field pass
// through untouched; whether a missing image is an error is the lifecycle
// service's decision.
func FileUpload(cfg UploadConfig) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[strings.ToLower(t)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
				return next(c)
			}

			form, err := c.MultipartForm()
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "malformed multipart form")
			}

			files := form.File[imageField]
			if len(files) == 0 {
				return next(c)
			}
			if len(files) > 1 {
				return echo.NewHTTPError(http.StatusBadRequest, "only one image file is allowed per request")
			}

			header := files[0]
			if header.Size > cfg.MaxFileSize {
				return echo.NewHTTPError(http.StatusBadRequest, "file size cannot exceed 6MB")
			}

			mime := strings.ToLower(strings.TrimSpace(strings.Split(header.Header.Get("Content-Type"), ";")[0]))
			if _, ok := allowed[mime]; !ok {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid file type, only PNG, JPG, JPEG, and GIF are allowed")
			}

			path, err := saveTemp(header)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to buffer upload")
			}
			// Guaranteed release: the asset host holds the durable copy
			// once the handler succeeds, and failures must not leak files.
			defer os.Remove(path)

			c.Set(ImagePathKey, path)
			return next(c)
		}
	}
}

func saveTemp(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(os.TempDir(), imageField+"-"+uuid.NewString()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
