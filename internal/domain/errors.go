package domain

import "errors"

// Domain errors.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrFileClose        = errors.New("cannot close file")
	ErrFileWrite        = errors.New("cannot write file")
	ErrInvalidRecord    = errors.New("invalid task record")
	ErrUnknownFormat    = errors.New("unknown file format")
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidDate      = errors.New("invalid date")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrEmptyDescription = errors.New("description cannot be empty")
)
