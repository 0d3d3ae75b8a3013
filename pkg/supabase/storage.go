// Package supabase stores exported documents in a Supabase bucket through its S3 compatible endpoint.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock

const (
	InvoicesStoragePath = "invoices"
	PostersStoragePath  = "posters"
	TurfsStoragePath    = "turfs"

	MinURLParts = 2
)

var (
	ErrInvalidFileURL     = errors.New("invalid file URL")
	ErrFailedToUploadFile = errors.New("failed to upload file to Supabase")
	ErrFailedToDeleteFile = errors.New("failed to delete file from Supabase")
)

type Storage interface {
	// Upload stores body under dir with a random name and returns its public URL.
	Upload(ctx context.Context, dir, ext, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// ObjectAPI is the part of the S3 client the storage uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Region          string
	BucketName      string
}

type Client struct {
	s3Client    ObjectAPI
	bucketName  string
	endpointURL string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL)
		o.UsePathStyle = true
	})

	return NewWithAPI(client, cfg.BucketName, cfg.EndpointURL), nil
}

func NewWithAPI(api ObjectAPI, bucket, endpointURL string) *Client {
	return &Client{
		s3Client:    api,
		bucketName:  bucket,
		endpointURL: strings.TrimRight(endpointURL, "/"),
	}
}

func (c *Client) Upload(ctx context.Context, dir, ext, contentType string, body io.Reader) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	key := path.Join(dir, uuid.New().String()+ext)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToUploadFile, err)
	}

	return c.GetPublicURL(key), nil
}

func (c *Client) Delete(ctx context.Context, fileURL string) error {
	key := c.extractKeyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("%w: %s", ErrInvalidFileURL, fileURL)
	}

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteFile, err)
	}

	return nil
}

func (c *Client) GetPublicURL(key string) string {
	baseURL := strings.Replace(c.endpointURL, "/storage/v1/s3", "", 1)

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", baseURL, c.bucketName, key)
}

func (c *Client) extractKeyFromURL(fileURL string) string {
	parts := strings.Split(fileURL, "/")
	if len(parts) < MinURLParts {
		return ""
	}

	for i, part := range parts {
		if part == c.bucketName && i < len(parts)-1 {
			return strings.Join(parts[i+1:], "/")
		}
	}

	return ""
}
