package seed

import "errors"

// ErrInternal возвращается при ошибках заполнения
var ErrInternal = errors.New("seed: internal error")
