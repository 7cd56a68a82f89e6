package service

import "errors"

// Sentinel errors the HTTP layer translates into status codes. Repositories
// return raw GORM errors; services convert them here so handlers never import
// gorm.
var (
	// ErrNotFound signals an id that resolves to no row.
	ErrNotFound = errors.New("registro no encontrado")
	// ErrDuplicateKey signals a create colliding with an existing primary key.
	ErrDuplicateKey = errors.New("clave primaria duplicada")
	// ErrReferenceViolated signals a dangling category reference on write, or
	// a category delete blocked by products that still point at it.
	ErrReferenceViolated = errors.New("violación de integridad referencial")
)
