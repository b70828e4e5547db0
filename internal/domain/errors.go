package domain

import "errors"

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrForeignKey     = errors.New("referenced row does not exist")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)
