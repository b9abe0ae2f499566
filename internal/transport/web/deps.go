package web

import "github.com/saimahendra282/testdeployment/internal/domain"

// Stores — хранилища, которые собирает app.Build и получают хендлеры
type Stores struct {
	Music domain.MusicRepo
	Blobs domain.BlobStorage
}
