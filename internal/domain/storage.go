package domain

import (
	"context"
	"io"
)

// Хранилище бинарного контента (GridFS или S3/MinIO)
type BlobStorage interface {
	// Сохранение нового файла, возвращает сгенерированный id
	Put(ctx context.Context, r io.Reader, filename, contentType string) (BlobID, error)
	// Поток для чтения; для неизвестного id — ErrBlobNotFound
	Get(ctx context.Context, id BlobID) (io.ReadCloser, error)
	Ping(ctx context.Context) error
}
