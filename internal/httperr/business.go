package httperr

import "errors"

// Códigos de negocio del motor de reservas. Son resultados esperados:
// el handler los traduce a 4xx, nunca a un 500 genérico.
const (
	CodeNotFound          = "not_found"
	CodeInvalidRange      = "invalid_range"
	CodeSlotUnavailable   = "slot_unavailable"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidAmount     = "invalid_amount"
	CodeTooEarly          = "too_early"
	CodeNoRateDefined     = "no_rate_defined"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devuelve el código cuando err es un error de negocio.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
