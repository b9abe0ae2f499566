package domain

import (
	"fmt"
	"time"
)

// Фиксированные типы контента для загружаемых файлов
const (
	PicContentType   = "image/jpeg"
	AudioContentType = "audio/mpeg"

	PicFilePrefix   = "pic_"
	AudioFilePrefix = "audio_"
)

// Идентификатор записи в хранилище бинарных файлов (GridFS ObjectID hex или ключ S3)
type BlobID = string

// Метаданные трека: имя + две ссылки на файлы в BlobStorage
type Music struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	PicID     BlobID    `json:"picId"`
	AudioID   BlobID    `json:"audioId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Входные данные для вставки (id и время выставляет хранилище)
type NewMusic struct {
	Name    string
	PicID   BlobID
	AudioID BlobID
}

// Validate проверяет обязательные поля записи
func (m NewMusic) Validate() error {
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case m.PicID == "":
		return fmt.Errorf("%w: picId is required", ErrValidation)
	case m.AudioID == "":
		return fmt.Errorf("%w: audioId is required", ErrValidation)
	}
	return nil
}

// Элемент списка /music
type MusicEntry struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	PicURL   string `json:"picUrl"`
	AudioURL string `json:"audioUrl"`
}
