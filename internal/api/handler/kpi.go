package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListKpiRecords lista os registros de KPI, com filtros opcionais de
// período (startDate, endDate) e time, ordenados por data decrescente
func ListKpiRecords(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, verr := parseKpiFilters(r)
		if verr != nil {
			apiErrors.WriteValidationError(w, verr.Message, verr.Field)
			return
		}

		records, err := service.ListRecords(*filters)
		if err != nil {
			logger.WithError(err).Error("kpi-records: erro ao listar registros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch KPI records")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("kpi-records: erro ao codificar resposta")
		}
	})
}

// CreateKpiRecord cria um novo registro de KPI a partir do corpo JSON.
// Valores numéricos podem vir como número ou string numérica.
func CreateKpiRecord(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.KpiRecordInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		record, err := service.CreateRecord(&input)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				apiErrors.WriteValidationError(w, verr.Message, verr.Field)
				return
			}

			logger.WithError(err).Error("kpi-records: erro ao criar registro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to create KPI record")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithError(err).Error("kpi-records: erro ao codificar resposta")
		}
	})
}

// UpdateKpiRecord aplica uma atualização parcial: somente os campos
// presentes no corpo são alterados
func UpdateKpiRecord(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := recordIDFromRequest(w, r)
		if !ok {
			return
		}

		var patch domain.KpiRecordPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		record, err := service.UpdateRecord(id, &patch)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				apiErrors.WriteValidationError(w, verr.Message, verr.Field)
				return
			}

			if errors.Is(err, recording.ErrRecordNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "KPI record not found")
				return
			}

			logger.WithError(err).WithField("record_id", id).Error("kpi-records: erro ao atualizar registro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to update KPI record")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithError(err).Error("kpi-records: erro ao codificar resposta")
		}
	})
}

// DeleteKpiRecord remove um registro pelo id. Id inexistente responde 404:
// a remoção não é idempotente do ponto de vista do cliente.
func DeleteKpiRecord(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := recordIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteRecord(id); err != nil {
			if errors.Is(err, recording.ErrRecordNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "KPI record not found")
				return
			}

			logger.WithError(err).WithField("record_id", id).Error("kpi-records: erro ao remover registro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to delete KPI record")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ListKpiTeams retorna os nomes de times distintos presentes na base, para
// montar o filtro de times do cliente
func ListKpiTeams(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		teams, err := service.ListTeams()
		if err != nil {
			logger.WithError(err).Error("kpi-teams: erro ao listar times")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch teams")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(teams); err != nil {
			logger.WithError(err).Error("kpi-teams: erro ao codificar resposta")
		}
	})
}

// parseKpiFilters monta os filtros de listagem a partir da query string
func parseKpiFilters(r *http.Request) (*domain.KpiFilters, *domain.ValidationError) {
	filters := &domain.KpiFilters{
		Team: r.URL.Query().Get("team"),
	}

	if startDate := r.URL.Query().Get("startDate"); startDate != "" {
		parsed, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, &domain.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"}
		}
		filters.StartDate = parsed
	}

	if endDate := r.URL.Query().Get("endDate"); endDate != "" {
		parsed, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, &domain.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"}
		}
		filters.EndDate = parsed
	}

	return filters, nil
}

// recordIDFromRequest extrai e valida o id numérico da URL. Em caso de id
// inválido já escreve a resposta de erro e retorna ok=false.
func recordIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid KPI record id")
		return 0, false
	}

	return id, true
}
