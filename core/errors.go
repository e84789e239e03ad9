package core

import "errors"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("i/o error")
	ErrParse        = errors.New("not a valid decimal integer")
)
