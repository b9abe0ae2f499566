package s3

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/saimahendra282/testdeployment/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

type Storage struct {
	cl     *minio.Client
	bucket string
	logger *log.Logger
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}

	// бакет создаём при старте, если его нет
	exists, err := cl.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket exists %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := cl.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
		logger.Printf("bucket %q created", cfg.Bucket)
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, logger: logger}, nil
}

// Put загружает поток под новым ключом (uuid) и возвращает ключ как id.
func (s *Storage) Put(ctx context.Context, r io.Reader, filename, contentType string) (domain.BlobID, error) {
	key := uuid.NewString()

	size := int64(-1)
	if sz, ok := r.(interface{ Size() int64 }); ok {
		size = sz.Size()
	}
	info, err := s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"filename": filename},
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", filename, err)
	}
	s.logger.Printf("put %s ok key=%s size=%d mime=%s", filename, key, info.Size, contentType)
	return key, nil
}

// Get открывает поток для чтения. GetObject ленивый, поэтому существование
// объекта проверяем через Stat до отдачи потока.
func (s *Storage) Get(ctx context.Context, id domain.BlobID) (io.ReadCloser, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: bad key %q", domain.ErrBlobNotFound, id)
	}
	obj, err := s.cl.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapErr(id, err)
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, mapErr(id, err)
	}
	return obj, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	ok, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func mapErr(key string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrBlobNotFound, key)
	}
	return fmt.Errorf("get %s: %w", key, err)
}
