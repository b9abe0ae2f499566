// Package memstore — in-memory реализации domain.BlobStorage и domain.MusicRepo для тестов.
package memstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saimahendra282/testdeployment/internal/domain"
)

type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Blobs struct {
	mu    sync.Mutex
	blobs map[domain.BlobID]Blob

	// PutErr, если задан, возвращается из Put для файлов с этим типом контента
	PutErr map[string]error
	// ReadErr, если задан, возвращается потоком вместо данных
	ReadErr error
}

func NewBlobs() *Blobs {
	return &Blobs{blobs: map[domain.BlobID]Blob{}, PutErr: map[string]error{}}
}

func (b *Blobs) Put(ctx context.Context, r io.Reader, filename, contentType string) (domain.BlobID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.mu.Lock()
	putErr := b.PutErr[contentType]
	b.mu.Unlock()
	if putErr != nil {
		return "", putErr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[id] = Blob{Filename: filename, ContentType: contentType, Data: data}
	return id, nil
}

func (b *Blobs) Get(_ context.Context, id domain.BlobID) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	blob, ok := b.blobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, id)
	}
	if b.ReadErr != nil {
		return io.NopCloser(&failingReader{err: b.ReadErr}), nil
	}
	return io.NopCloser(bytes.NewReader(blob.Data)), nil
}

func (b *Blobs) Ping(context.Context) error { return nil }

// Blob возвращает сохранённый файл по id
func (b *Blobs) Blob(id domain.BlobID) (Blob, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	blob, ok := b.blobs[id]
	return blob, ok
}

func (b *Blobs) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.blobs)
}

type failingReader struct{ err error }

func (f *failingReader) Read([]byte) (int, error) { return 0, f.err }

type Repo struct {
	mu   sync.Mutex
	rows []domain.Music

	// Err, если задан, возвращается из Insert и FindAll
	Err error
}

func NewRepo() *Repo { return &Repo{} }

func (r *Repo) Insert(_ context.Context, m domain.NewMusic) (domain.Music, error) {
	if r.Err != nil {
		return domain.Music{}, r.Err
	}
	if err := m.Validate(); err != nil {
		return domain.Music{}, err
	}
	now := time.Now().UTC()
	rec := domain.Music{
		ID:        uuid.NewString(),
		Name:      m.Name,
		PicID:     m.PicID,
		AudioID:   m.AudioID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rec)
	return rec, nil
}

func (r *Repo) FindAll(context.Context) ([]domain.Music, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Music, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// Add кладёт запись как есть, минуя валидацию
func (r *Repo) Add(m domain.Music) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, m)
}

func (r *Repo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *Repo) Ping(context.Context) error { return nil }
func (r *Repo) Close(context.Context)      {}
