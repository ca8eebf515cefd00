package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Funcionan como "tipo" del error:
// los handlers HTTP los distinguen con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrTransactionFailed = errors.New("la transacción falló")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)

// Error es un error de dominio con mensaje legible y, si aplica, la causa que reportó el store.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap expone tanto el tipo como la causa para errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Validation error de entrada faltante o malformada (nunca toca el store).
func Validation(msg string) error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

// NotFound el pedido o medicamento referenciado no existe.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Conflict violación de una guarda de estado del pedido.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// TransactionFailed envuelve un fallo del store durante una operación multi-paso.
func TransactionFailed(msg string, cause error) error {
	return &Error{Kind: ErrTransactionFailed, Message: msg, Cause: cause}
}

// IsKnown indica si err ya es un error de dominio clasificado.
func IsKnown(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrTransactionFailed) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden)
}

// AsTransactionFailed deja intactos los errores de dominio y envuelve cualquier otro
// (fallos del driver, commit, etc.) como ErrTransactionFailed.
func AsTransactionFailed(msg string, err error) error {
	if err == nil || IsKnown(err) {
		return err
	}
	return TransactionFailed(msg, err)
}

// Message devuelve el mensaje legible de un error de dominio o err.Error() en otro caso.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
