package storage

import "errors"

var (
	ErrSlotNotFound  = errors.New("slot not found")
	ErrInvalidData   = errors.New("invalid data")
	ErrStorageInit   = errors.New("storage initialization failed")
	ErrFileOperation = errors.New("file operation failed")
)
