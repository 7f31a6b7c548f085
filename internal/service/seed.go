package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/rs/zerolog"
)

var seedEmployees = []string{
	"SIMONE CHELLI",
	"DARIO MOTRONI",
	"CLAUDIO VERDIGI",
	"FABRIZIO GIACHETTI",
	"MATTEO GENTILESCHI",
	"SOLE CARDOSI",
	"MAURIZIO CECCHINI",
	"ALEXANDRO VASILE",
	"GIACOMO FEDELI",
	"NICOLO' FAMBRINI",
	"ANTONIO CERSOSIMO",
	"SEMIR SEFOSKI",
	"LUCA PALMERINI",
	"STEFANO PICCHI",
	"NICCOLO' BENEDETTI",
	"PRIMIANO SIMEONE",
	"PAOLO PARDINI",
	"ANDREA BIBOLOTTI",
	"OMAR ZARROUKI",
}

var seedAdmin = model.User{FullName: "ADMIN EUROELETTRICA", AccessCode: "admin", IsAdmin: true}

var seedPhases = []model.WorkPhase{
	{Code: "BOR0101", Description: "FORATURA PASSAGGI CAVI SU SOLETTA", Category: "BOR01", HourThreshold: model.DefaultHourThreshold},
	{Code: "BOR0102", Description: "FORATURA PASSAGGI CAVI SU TRAMEZZATURE", Category: "BOR01", HourThreshold: model.DefaultHourThreshold},
}

// SeedResult counts the rows a seed run actually inserted.
type SeedResult struct {
	Users  int
	Phases int
}

// SeedService loads the predefined accounts and phases. Running it again
// only fills what is missing.
type SeedService struct {
	users  UserStore
	phases WorkPhaseStore
	logger *zerolog.Logger
}

func NewSeedService(users UserStore, phases WorkPhaseStore, logger *zerolog.Logger) *SeedService {
	return &SeedService{
		users:  users,
		phases: phases,
		logger: logger,
	}
}

func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	accounts := make([]model.User, 0, len(seedEmployees)+1)
	for _, name := range seedEmployees {
		accounts = append(accounts, model.User{FullName: name, AccessCode: model.NormalizeAccessCode(name)})
	}
	accounts = append(accounts, seedAdmin)

	for i := range accounts {
		created, err := s.users.CreateIfMissing(ctx, &accounts[i])
		if err != nil {
			return result, fmt.Errorf("seed user %s: %w", accounts[i].FullName, err)
		}
		if created {
			result.Users++
			s.logger.Debug().Str("full_name", accounts[i].FullName).Msg("seeded user")
		}
	}

	for i := range seedPhases {
		phase := seedPhases[i]
		created, err := s.phases.CreateIfMissing(ctx, &phase)
		if err != nil {
			return result, fmt.Errorf("seed work phase %s: %w", phase.Code, err)
		}
		if created {
			result.Phases++
			s.logger.Debug().Str("code", phase.Code).Msg("seeded work phase")
		}
	}

	s.logger.Info().
		Int("users", result.Users).
		Int("phases", result.Phases).
		Msg("seed completed")

	return result, nil
}
