package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recurso (RES)
	ErrRecordNotFound = "RES_001" // Registro não encontrado

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRecordNotFound:      http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError é o corpo de erro padronizado. O contrato com o cliente é
// {message} para não-encontrado e {message, field} para validação.
type APIError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"` // Campo ofensor em erros de validação
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	writeError(w, code, APIError{Message: message})
}

// WriteValidationError escreve um erro 400 apontando o primeiro campo inválido
func WriteValidationError(w http.ResponseWriter, message string, field string) {
	writeError(w, ErrInvalidRequest, APIError{Message: message, Field: field})
}

func writeError(w http.ResponseWriter, code string, apiErr APIError) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
