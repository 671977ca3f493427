package utils

import (
	"bebit-api/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateTicketCode returns the short code embedded in ticket QR payloads.
func GenerateTicketCode() string {
	id, err := gonanoid.Generate(idAlphabet, constants.TicketCodeLength)
	if err != nil {
		return ""
	}
	return id
}
