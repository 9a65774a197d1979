package ports

import "context"

// ImageUploader forwards a local file to the remote asset host and returns
// the durable URL. The caller enforces MIME/size constraints before calling.
type ImageUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
