//go:generate go tool oapi-codegen -generate types,skip-prune -package openapi -o types.go openapi.yaml
//go:generate go tool oapi-codegen -generate spec -package openapi -o schema.go openapi.yaml

package openapi

import (
	"errors"
	"regexp"
)

var ErrInvalidUsername = errors.New("invalid username: must not be empty or contain control characters")

// Any printable text is a username, including spaces and punctuation.
var usernameValidationRegex = regexp.MustCompile(`^\PC+$`)

type Username struct {
	Value string
}

func (n *Username) UnmarshalText(text []byte) error {
	if !usernameValidationRegex.Match(text) {
		return ErrInvalidUsername
	}

	*n = Username{
		Value: string(text),
	}

	return nil
}

func (n Username) MarshalText() ([]byte, error) {
	return []byte(n.Value), nil
}
