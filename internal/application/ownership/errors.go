package ownership

import "errors"

var ErrEmptyReport = errors.New("Nenhum dado encontrado para o relatório.")
