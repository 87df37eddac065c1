package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/filter"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

type IntakeOutcome string

const (
	IntakeAccepted  IntakeOutcome = "accepted"
	IntakeRejected  IntakeOutcome = "rejected"
	IntakeExists    IntakeOutcome = "exists"
	IntakeDuplicate IntakeOutcome = "duplicate"
)

type CandidateIntake struct {
	candidates repository.CandidateRepository
	logger     *slog.Logger
}

func NewCandidateIntake(candidates repository.CandidateRepository, logger *slog.Logger) *CandidateIntake {
	return &CandidateIntake{
		candidates: candidates,
		logger:     logger,
	}
}

// Intake records the sender once per owner. A candidate with decision metadata
// is kept for audit but never dispatched.
func (i *CandidateIntake) Intake(
	ctx context.Context,
	tick *models.TickContext,
	sender models.Sender,
	message models.Message,
	meta *models.DecisionMeta,
) (IntakeOutcome, error) {
	exists, err := i.candidates.Exists(ctx, tick.OwnerID, sender.ExternalUserID)
	if err != nil {
		return "", err
	}

	if exists {
		metrics.RecordCandidate(string(IntakeExists))
		return IntakeExists, nil
	}

	candidate := &models.Candidate{
		OwnerID:         tick.OwnerID,
		ExternalUserID:  sender.ExternalUserID,
		Handle:          sender.Handle,
		SourceMessageID: message.ID,
		SourceChatID:    message.ChatID,
		ContextText:     message.Text,
		Accepted:        true,
	}

	outcome := IntakeAccepted

	if meta != nil {
		data, err := json.Marshal(meta)
		if err != nil {
			return "", fmt.Errorf("ошибка при сериализации метаданных решения: %w", err)
		}

		candidate.Accepted = false
		candidate.DecisionMeta = data
		outcome = IntakeRejected
	}

	inserted, err := i.candidates.Insert(ctx, candidate)
	if err != nil {
		return "", err
	}

	if !inserted {
		// Параллельный проход успел вставить того же пользователя.
		i.logger.Info("Кандидат уже добавлен параллельно",
			"runID", tick.RunID,
			"externalUserID", sender.ExternalUserID,
		)
		metrics.RecordCandidate(string(IntakeDuplicate))

		return IntakeDuplicate, nil
	}

	i.logger.Info("Добавлен кандидат",
		"runID", tick.RunID,
		"handle", sender.Handle,
		"accepted", candidate.Accepted,
		"candidateID", candidate.ID,
	)
	metrics.RecordCandidate(string(outcome))

	return outcome, nil
}

// BuildDecisionMeta explains why a candidate needs a manual decision. It
// returns nil when no signal fired.
func BuildDecisionMeta(result filter.Result, mentionPresent bool, bannedHandle string, alreadyExists bool) *models.DecisionMeta {
	meta := &models.DecisionMeta{}
	fired := false

	if !result.Accepted {
		meta.Filtered = true
		meta.Ignores = result.MatchedExcludes
		meta.Triggers = result.MatchedTriggers
		fired = true
	}

	if !mentionPresent {
		meta.NotMention = true
		fired = true
	}

	if bannedHandle != "" {
		meta.Banned = bannedHandle
		meta.Ignores = result.MatchedExcludes
		meta.Triggers = result.MatchedTriggers
		fired = true
	}

	if alreadyExists {
		meta.AlreadyExists = true
		fired = true
	}

	if !fired {
		return nil
	}

	return meta
}
