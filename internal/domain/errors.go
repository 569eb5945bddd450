package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrReferenceNotFound = errors.New("referencia a recurso inexistente")
	ErrSameWarehouse     = errors.New("traslado a la misma bodega")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCategoryCycle     = errors.New("el padre crearía un ciclo de categorías")
)
