package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"autogestor/internal/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"
)

// ObjectStore is the upload facility behind the image adapter.
type ObjectStore interface {
	Put(ctx context.Context, objectName, contentType string, data []byte) (string, error)
	EnsureBucket(ctx context.Context) error
}

type minioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioStore(endpoint, accessKey, secretKey string, useSSL bool, bucket, publicURL string) (ObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioStore{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (m *minioStore) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, objectName), nil
}

func (m *minioStore) EnsureBucket(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// ImageService decodes base64 payloads and uploads them, returning the
// public URLs in input order. A single bad payload fails the whole
// batch, so a vehicle row never references a partial upload.
type ImageService interface {
	Ingest(ctx context.Context, dealerID uuid.UUID, files []models.ImagePayload) ([]string, error)
}

type imageService struct {
	store ObjectStore
}

func NewImageService(store ObjectStore) ImageService {
	return &imageService{store: store}
}

func (s *imageService) Ingest(ctx context.Context, dealerID uuid.UUID, files []models.ImagePayload) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	// Decoding is CPU-only, so all payloads decode concurrently and
	// join before any upload happens.
	decoded := make([][]byte, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			data, err := decodeBase64Payload(file.Data)
			if err != nil {
				return fmt.Errorf("no se pudo decodificar la imagen %q: %w", file.Name, err)
			}
			decoded[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	urls := make([]string, len(files))
	for i, file := range files {
		objectName := fmt.Sprintf("%s/%s-%s", dealerID, uuid.New(), sanitizeObjectName(file.Name))
		url, err := s.store.Put(ctx, objectName, file.Type, decoded[i])
		if err != nil {
			return nil, fmt.Errorf("no se pudo subir la imagen %q: %w", file.Name, err)
		}
		urls[i] = url
	}
	return urls, nil
}

// decodeBase64Payload accepts both raw base64 and data-URL payloads
// ("data:image/png;base64,....").
func decodeBase64Payload(data string) ([]byte, error) {
	if idx := strings.Index(data, ","); idx != -1 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(data))
}

func sanitizeObjectName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "image"
	}
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
