package production

import "errors"

var ErrInvalidInput = errors.New("Entrada inválida")
