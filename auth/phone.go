package auth

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidPhone is returned when a submitted phone number cannot be
// parsed or is not a valid number for its country.
var ErrInvalidPhone = goerrors.New("invalid phone number", goerrors.CategoryValidation).
	WithTextCode("INVALID_PHONE").
	WithCode(goerrors.CodeBadRequest)

// NormalizePhone validates a phone number and formats it as E.164 so the
// store holds one canonical representation. The field is optional; the
// empty string passes through. Numbers must carry their country prefix
// since no caller region is known.
func NormalizePhone(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return "", ErrInvalidPhone.Clone().WithMetadata(map[string]any{
			"phone": raw,
		})
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone.Clone().WithMetadata(map[string]any{
			"phone": raw,
		})
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
