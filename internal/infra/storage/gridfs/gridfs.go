package gridfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/saimahendra282/testdeployment/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	logger *log.Logger
	db     *mongo.Database
	bucket *gridfs.Bucket
}

func New(db *mongo.Database, bucketName string, logger *log.Logger) (*Storage, error) {
	b, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket %q: %w", bucketName, err)
	}
	logger.Printf("bucket %q ready", bucketName)
	return &Storage{logger: logger, db: db, bucket: b}, nil
}

// Put открывает upload stream, пишет весь поток и возвращает id файла после финализации.
func (s *Storage) Put(ctx context.Context, r io.Reader, filename, contentType string) (domain.BlobID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// тип кладём в metadata.contentType: top-level files.contentType в GridFS deprecated, Go-драйвер его не пишет
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})
	us, err := s.bucket.OpenUploadStream(filename, opts)
	if err != nil {
		return "", fmt.Errorf("open upload stream: %w", err)
	}

	n, err := io.Copy(us, r)
	if err != nil {
		_ = us.Abort()
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	// Close дописывает последний чанк и документ в <bucket>.files
	if err := us.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", filename, err)
	}

	oid, ok := us.FileID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected file id type %T", us.FileID)
	}
	s.logger.Printf("put %s ok id=%s size=%d mime=%s", filename, oid.Hex(), n, contentType)
	return oid.Hex(), nil
}

// Get открывает download stream; неизвестный или некорректный id -> domain.ErrBlobNotFound.
func (s *Storage) Get(ctx context.Context, id domain.BlobID) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: bad id %q", domain.ErrBlobNotFound, id)
	}
	ds, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, id)
		}
		return nil, fmt.Errorf("open download stream %s: %w", id, err)
	}
	return ds, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}
