package recording

import "errors"

// Erros específicos para o contexto de registros de KPI
var (
	// Erros de validação
	ErrRecordNotFound = errors.New("registro não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
)
