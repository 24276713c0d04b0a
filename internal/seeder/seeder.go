// Package seeder popula o banco com dados de demonstração na primeira
// subida, quando ainda não existe nenhum registro
package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

// teams são os times de demonstração carregados na primeira subida
var teams = []string{
	"OCENIA",
	"CYPRUS",
	"KENYA",
	"MOZAMBIQUE",
	"MALAWI",
	"JAMAICA",
	"BAHAMAS/GUYANA",
	"TRUCKS",
}

const monthsOfHistory = 3

const seedNotes = "Auto-generated seed data"

// Run carrega os dados de demonstração quando habilitado e o banco está
// vazio. Falha de seed não derruba a aplicação: o chamador decide apenas
// registrar o erro.
func Run(recordRepo repository.KpiRecordRepository, cfg *config.Config) error {
	if !cfg.Seed.Enabled {
		logrus.Info("Carga de dados de demonstração desabilitada por configuração")
		return nil
	}

	existing, err := recordRepo.List(domain.KpiFilters{})
	if err != nil {
		return fmt.Errorf("erro ao verificar registros existentes: %w", err)
	}

	if len(existing) > 0 {
		logrus.WithField("records", len(existing)).Info("Banco já possui registros, carga de demonstração ignorada")
		return nil
	}

	logrus.Info("Banco vazio, iniciando carga de dados de demonstração")

	inputs := buildSeedRecords(time.Now())
	for _, input := range inputs {
		if _, err := recordRepo.Create(input); err != nil {
			return fmt.Errorf("erro ao inserir registro de demonstração (%s, %s): %w", input.Team, input.Date, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"records": len(inputs),
		"teams":   len(teams),
		"months":  monthsOfHistory,
	}).Info("Carga de dados de demonstração concluída")

	return nil
}

// buildSeedRecords monta um registro por time para o mês corrente e os dois
// anteriores, com valores pseudoaleatórios plausíveis
func buildSeedRecords(now time.Time) []*domain.KpiRecordInput {
	rng := rand.New(rand.NewSource(now.UnixNano()))

	inputs := make([]*domain.KpiRecordInput, 0, len(teams)*monthsOfHistory)

	for back := monthsOfHistory - 1; back >= 0; back-- {
		month := now.AddDate(0, -back, 0)
		date := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

		for _, team := range teams {
			target := 100 + rng.Float64()*100
			shipOk := target * (0.4 + rng.Float64()*0.6)
			notes := seedNotes

			inputs = append(inputs, &domain.KpiRecordInput{
				Date:               date.Format(time.DateOnly),
				Team:               team,
				Target:             metric(target),
				YtdTarget:          metric(target * 12),
				QualifiedInquiries: metric(target * (2 + rng.Float64())),
				NewRegister:        metric(target * (1 + rng.Float64())),
				NewDeposit:         metric(shipOk * (1 + rng.Float64()*0.5)),
				NewDepositShipOk:   metric(shipOk * 0.7),
				Strategic:          metric(shipOk * 0.2),
				Retention:          metric(shipOk * 0.1),
				Upsell:             metric(shipOk * rng.Float64() * 0.3),
				Notes:              &notes,
			})
		}
	}

	return inputs
}

func metric(v float64) *domain.Metric {
	m := domain.Metric(float64(int(v)))
	return &m
}
