package io

import (
	"errors"

	"github.com/ezrec/synvm/translate"
)

var f = translate.From

var (
	// Terminal errors
	ErrInputExhausted = errors.New(f("input exhausted"))
)
