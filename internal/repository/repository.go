// Package repository holds what the storage adapters share.
package repository

import "errors"

var ErrNotFound = errors.New("not found")
