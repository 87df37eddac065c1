package repository

import (
	"log/slog"

	"github.com/matthew11k/outreach/internal/database"
	"github.com/matthew11k/outreach/internal/engine/repository/orm"
)

// Repositories bundles every store accessor built on one pool.
type Repositories struct {
	Bots       BotRepository
	Owners     OwnerRepository
	Channels   ChannelRepository
	Rules      RuleRepository
	Bans       BanRepository
	Candidates CandidateRepository
	Jobs       JobRepository
}

func NewRepositories(db *database.PostgresDB, logger *slog.Logger) *Repositories {
	logger.Info("Создание ORM (Squirrel) репозиториев")

	return &Repositories{
		Bots:       orm.NewBotRepository(db),
		Owners:     orm.NewOwnerRepository(db),
		Channels:   orm.NewChannelRepository(db),
		Rules:      orm.NewRuleRepository(db),
		Bans:       orm.NewBanRepository(db),
		Candidates: orm.NewCandidateRepository(db),
		Jobs:       orm.NewJobRepository(db),
	}
}
