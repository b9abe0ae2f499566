package music

import (
	"log"

	"github.com/saimahendra282/testdeployment/internal/domain"
)

// Handler обслуживает /upload, /music и /file/{id}
type Handler struct {
	Log     *log.Logger
	Storage domain.BlobStorage
	Repo    domain.MusicRepo
}
