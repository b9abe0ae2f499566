package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в транспортном слое)
var (
	ErrBadParams    = errors.New("bad_params")     // 400
	ErrValidation   = errors.New("validation")     // на /upload отдаётся как 500
	ErrBlobNotFound = errors.New("blob_not_found") // 404
)
