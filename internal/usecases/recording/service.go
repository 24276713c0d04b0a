// Package recording implementa o caso de uso de manutenção dos registros
// de KPI: listagem com filtros, criação validada, atualização parcial e
// remoção por id
package recording

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

// Recorder é a interface do serviço de manutenção de registros de KPI
type Recorder interface {
	ListRecords(filters domain.KpiFilters) ([]*domain.KpiRecord, error)
	CreateRecord(input *domain.KpiRecordInput) (*domain.KpiRecord, error)
	UpdateRecord(id int, patch *domain.KpiRecordPatch) (*domain.KpiRecord, error)
	DeleteRecord(id int) error
	ListTeams() ([]string, error)
}

type Service struct {
	recordRepo repository.KpiRecordRepository
}

func NewService(recordRepo repository.KpiRecordRepository) *Service {
	return &Service{
		recordRepo: recordRepo,
	}
}

// ListRecords retorna os registros que atendem aos filtros, ordenados por
// data decrescente
func (s *Service) ListRecords(filters domain.KpiFilters) ([]*domain.KpiRecord, error) {
	records, err := s.recordRepo.List(filters)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return records, nil
}

// CreateRecord valida e persiste um novo registro. O id e o createdAt são
// atribuídos pelo banco.
func (s *Service) CreateRecord(input *domain.KpiRecordInput) (*domain.KpiRecord, error) {
	if verr := input.Validate(); verr != nil {
		return nil, verr
	}

	record, err := s.recordRepo.Create(input)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	log.L.WithFields(log.Fields{
		"record_id": record.ID,
		"team":      record.Team,
		"date":      input.Date,
	}).Info("Registro de KPI criado")

	return record, nil
}

// UpdateRecord valida os campos presentes no patch e aplica somente eles.
// Não cria registro quando o id não existe.
func (s *Service) UpdateRecord(id int, patch *domain.KpiRecordPatch) (*domain.KpiRecord, error) {
	if verr := patch.Validate(); verr != nil {
		return nil, verr
	}

	record, err := s.recordRepo.Update(id, patch)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if record == nil {
		return nil, ErrRecordNotFound
	}

	return record, nil
}

// DeleteRecord remove o registro pelo id. Remover um id inexistente
// retorna ErrRecordNotFound: a segunda remoção do mesmo id falha com 404.
func (s *Service) DeleteRecord(id int) error {
	deleted, err := s.recordRepo.Delete(id)
	if err != nil {
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if !deleted {
		return ErrRecordNotFound
	}

	log.L.WithField("record_id", id).Info("Registro de KPI removido")
	return nil
}

// ListTeams retorna os nomes de times distintos presentes na base
func (s *Service) ListTeams() ([]string, error) {
	teams, err := s.recordRepo.DistinctTeams()
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return teams, nil
}
