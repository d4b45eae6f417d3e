package upload

import "errors"

var (
	ErrUploadNotFound = errors.New("upload not found")
)
