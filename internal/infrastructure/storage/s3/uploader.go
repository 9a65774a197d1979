package s3

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Config struct {
	Bucket       string
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Folder       string
	UsePathStyle bool
}

// Uploader stores avatar images in an S3-compatible bucket and returns a
// public URL for the stored object. It implements ports.ImageUploader.
type Uploader struct {
	uploader *manager.Uploader
	cfg      Config
}

// New builds the S3 client and upload manager. Endpoint may point at AWS
// proper or at any S3-compatible host (MinIO and friends need path style).
func New(ctx context.Context, cfg Config) (*Uploader, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:    cfg.Endpoint,
				Source: aws.EndpointSourceCustom,
			}, nil
		})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Uploader{
		uploader: manager.NewUploader(client),
		cfg:      cfg,
	}, nil
}

// Upload reads the staged file at localPath and stores it under a fresh
// object key. The caller owns the staged file and its cleanup.
func (u *Uploader) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	ext := filepath.Ext(localPath)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("%s/%s%s", u.cfg.Folder, uuid.NewString(), ext)

	out, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(objectKey),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectKey, err)
	}

	if out.Location != "" {
		return out.Location, nil
	}
	return fmt.Sprintf("%s/%s/%s", u.cfg.Endpoint, u.cfg.Bucket, objectKey), nil
}
