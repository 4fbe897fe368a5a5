package pms

import (
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

// ErrInvalidArgument — нарушение контракта вызывающей стороной:
// неположительное число машин, отрицательная нагрузка, несовпадение числа работ.
var ErrInvalidArgument = errors.New("invalid argument")

func invalid(caller string, issue error) error {
	return fmt.Errorf(
		"%w: %w",
		ErrInvalidArgument,
		goerrors.ErrValidation{
			Caller: caller,
			Issue:  issue,
		},
	)
}
