package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f1tipp/F1Tipp_Go/internal/database/postgres"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Profile    repository.Profile
	Race       repository.Race
	Prediction repository.Prediction
	Bet        repository.Bet
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Profile:    postgres.NewProfileRepository(dbPool),
		Race:       postgres.NewRaceRepository(dbPool),
		Prediction: postgres.NewPredictionRepository(dbPool),
		Bet:        postgres.NewBetRepository(dbPool),
	}
}
