package discord

import (
	"gaasbot/internal/domain"
	"gaasbot/internal/ports/output"
)

// DomainErrorKey maps an error to the translation key of its user-facing
// message. Errors without a domain code map to the generic error message.
func DomainErrorKey(err error) string {
	if code := domain.Code(err); code != "" {
		return "error_" + code
	}
	return output.MsgErrorGeneric
}
