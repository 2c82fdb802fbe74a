package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrUpstream         = errors.New("el servicio de registros respondió con error")
	ErrNothingToExport  = errors.New("no hay datos para exportar")
	ErrPrintUnavailable = errors.New("no se pudo generar el documento de impresión")
)
