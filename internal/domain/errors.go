package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInUse              = errors.New("recurso referenciado por otros documentos")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Inventario.
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Mitades de la aplicación de un movimiento. Bajo TxRunner ninguna mitad
	// persiste sola, pero el caller necesita saber cuál escritura falló.
	ErrQuantityUpdateFailed = errors.New("falló la actualización de stock")
	ErrLedgerAppendFailed   = errors.New("falló el registro del movimiento")

	// Estados de documentos y sus líneas.
	ErrInvalidTransition      = errors.New("transición de estado no permitida")
	ErrSkippedTransition      = errors.New("el estado de la línea debe avanzar en orden")
	ErrStatusConflict         = errors.New("el estado del documento contradice el de sus líneas")
	ErrMissingShippingDetails = errors.New("faltan datos de envío")
)
