package music

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/saimahendra282/testdeployment/internal/domain"
	"github.com/saimahendra282/testdeployment/internal/transport/web/logx"
	"github.com/saimahendra282/testdeployment/internal/transport/web/mw"
	v1 "github.com/saimahendra282/testdeployment/internal/transport/web/v1"
)

type uploadRequest struct {
	Name  string `json:"name"`
	Pic   string `json:"pic"`   // data:image/...;base64,...
	Audio string `json:"audio"` // data:audio/mpeg;base64,...
}

// Upload godoc
// @Summary     Upload picture + audio
// @Description Принимает JSON с двумя data-URL (base64), сохраняет оба файла в blob storage и создаёт запись Music.
// @Tags        music
// @Accept      json
// @Produce     json
// @Param       request body uploadRequest true "name, pic, audio"
// @Success     200 {object} domain.UploadResult
// @Failure     400 {object} domain.APIMessage
// @Failure     413 {object} domain.APIMessage
// @Failure     500 {object} domain.APIMessage
// @Router      /upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "music.upload"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "content_length", r.ContentLength)

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logx.Error(h.Log, reqID, op, "body too large", err, "limit", tooLarge.Limit)
			v1.WriteFail(w, r, http.StatusRequestEntityTooLarge, v1.MsgTooLarge, err)
			return
		}
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteFail(w, r, http.StatusBadRequest, v1.MsgBadRequest, err)
		return
	}
	if req.Pic == "" || req.Audio == "" {
		logx.Error(h.Log, reqID, op, "missing file", domain.ErrBadParams,
			"has_pic", req.Pic != "", "has_audio", req.Audio != "")
		v1.WriteMessage(w, r, http.StatusBadRequest, v1.MsgUploadMissing)
		return
	}

	rec, err := h.store(r, req)
	if err != nil {
		logx.Error(h.Log, reqID, op, "upload failed", err)
		v1.WriteFail(w, r, http.StatusInternalServerError, v1.MsgUploadFailed, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", rec.ID, "pic_id", rec.PicID, "audio_id", rec.AudioID)
	v1.WriteJSON(w, r, http.StatusOK, domain.UploadResult{Message: v1.MsgUploadOK, Music: rec})
}

// store декодирует оба файла, параллельно пишет их в blob storage и
// сохраняет запись. Любая ошибка здесь (в т.ч. валидация имени) — 500;
// уже записанные файлы при ошибке не откатываются.
func (h *Handler) store(r *http.Request, req uploadRequest) (domain.Music, error) {
	picBytes, err := decodeDataURL(req.Pic)
	if err != nil {
		return domain.Music{}, fmt.Errorf("pic: %w", err)
	}
	audioBytes, err := decodeDataURL(req.Audio)
	if err != nil {
		return domain.Music{}, fmt.Errorf("audio: %w", err)
	}

	var picID, audioID domain.BlobID
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		id, err := h.Storage.Put(ctx, bytes.NewReader(picBytes), blobName(domain.PicFilePrefix, time.Now()), domain.PicContentType)
		picID = id
		return err
	})
	g.Go(func() error {
		id, err := h.Storage.Put(ctx, bytes.NewReader(audioBytes), blobName(domain.AudioFilePrefix, time.Now()), domain.AudioContentType)
		audioID = id
		return err
	})
	if err := g.Wait(); err != nil {
		if picID != "" || audioID != "" {
			h.Log.Printf("orphaned blobs after failed upload: pic_id=%q audio_id=%q", picID, audioID)
		}
		return domain.Music{}, fmt.Errorf("blob put: %w", err)
	}

	rec, err := h.Repo.Insert(r.Context(), domain.NewMusic{Name: req.Name, PicID: picID, AudioID: audioID})
	if err != nil {
		h.Log.Printf("orphaned blobs after failed insert: pic_id=%q audio_id=%q", picID, audioID)
		return domain.Music{}, fmt.Errorf("metadata insert: %w", err)
	}
	return rec, nil
}
