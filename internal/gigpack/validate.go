package gigpack

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidPack marks an edited document that failed validation.
var ErrInvalidPack = errors.New("invalid gig pack")

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks an incoming document before anything is written.
func Validate(p *GigPack) error {
	if p == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidPack)
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPack, err)
	}
	return nil
}
