// Package validate exposes a single shared request validator so every
// handler checks DTO `validate` tags the same way.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request DTO against its validate tags.
func Struct(s any) error {
	return v.Struct(s)
}
