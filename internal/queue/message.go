package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrMalformed marks a message that can never be processed. Such messages are
// dead-lettered instead of requeued.
var ErrMalformed = errors.New("malformed message")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode unmarshals body into T and validates its struct tags.
func Decode[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validate.Struct(v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

// Handle adapts a typed handler to Handler.
func Handle[T any](fn func(ctx context.Context, msg T) error) Handler {
	return func(ctx context.Context, body []byte) error {
		msg, err := Decode[T](body)
		if err != nil {
			return err
		}
		return fn(ctx, msg)
	}
}
