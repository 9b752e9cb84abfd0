package domain

import "errors"

// Domain errors.
var (
	ErrParticipantNotFound = errors.New("participante no encontrado")
	ErrEventNotFound       = errors.New("evento no encontrado")
	ErrAlreadyRegistered   = errors.New("el participante ya está registrado en este evento")
	ErrEventFull           = errors.New("el evento ha alcanzado su capacidad máxima")
	ErrEmailTaken          = errors.New("ya existe un participante con este correo")
	ErrNameEmailRequired   = errors.New("el nombre y el correo son obligatorios")
	ErrPasswordRequired    = errors.New("la contraseña es obligatoria")
	ErrTitleRequired       = errors.New("el título es obligatorio")
	ErrDateRequired        = errors.New("la fecha es obligatoria")
	ErrInvalidCapacity     = errors.New("la capacidad debe ser mayor a 0")
)

// IsNotFound reports whether err means a referenced participant or event
// does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrParticipantNotFound) || errors.Is(err, ErrEventNotFound)
}

// IsConflict reports whether err is a uniqueness conflict (duplicate
// registration or duplicate email).
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered) || errors.Is(err, ErrEmailTaken)
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameEmailRequired) ||
		errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrDateRequired) ||
		errors.Is(err, ErrInvalidCapacity)
}
