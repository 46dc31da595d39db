package service

import "errors"

// Sentinel errors services return so handlers can map them to HTTP statuses
// without inspecting message strings.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("el recurso ya existe")
	ErrValidation         = errors.New("datos inválidos")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInUse              = errors.New("el recurso está en uso")
)
