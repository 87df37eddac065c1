package service

import (
	"context"
	"math/rand"
	"strconv"
	"strings"

	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/platform"
)

type SendStrategy string

const (
	// StrategyAnswerThenForward sends the answer and then forwards the source post.
	StrategyAnswerThenForward SendStrategy = "answer_then_forward"
	// StrategyContextThenAnswer quotes the source text above the answer in one message.
	StrategyContextThenAnswer SendStrategy = "context_then_answer"
)

type WeightedStrategy struct {
	Strategy SendStrategy
	Weight   float64
}

// StrategyTable picks a send strategy with probability proportional to its weight.
type StrategyTable struct {
	entries []WeightedStrategy
	total   float64
}

// ParseStrategyWeights reads "strategy:weight,strategy:weight".
func ParseStrategyWeights(raw string) (*StrategyTable, error) {
	table := &StrategyTable{}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, weightRaw, found := strings.Cut(part, ":")
		if !found {
			return nil, &customerrors.ErrInvalidArgument{Message: "ожидается strategy:weight, получено " + part}
		}

		strategy := SendStrategy(strings.TrimSpace(name))
		if strategy != StrategyAnswerThenForward && strategy != StrategyContextThenAnswer {
			return nil, &customerrors.ErrInvalidArgument{Message: "неизвестная стратегия отправки " + string(strategy)}
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(weightRaw), 64)
		if err != nil || weight < 0 {
			return nil, &customerrors.ErrInvalidArgument{Message: "некорректный вес стратегии " + part}
		}

		table.entries = append(table.entries, WeightedStrategy{Strategy: strategy, Weight: weight})
		table.total += weight
	}

	if table.total <= 0 {
		return nil, &customerrors.ErrInvalidArgument{Message: "сумма весов стратегий должна быть положительной"}
	}

	return table, nil
}

func (t *StrategyTable) Entries() []WeightedStrategy {
	return t.entries
}

func (t *StrategyTable) Choose(rnd *rand.Rand) SendStrategy {
	point := rnd.Float64() * t.total

	for _, entry := range t.entries {
		if point < entry.Weight {
			return entry.Strategy
		}

		point -= entry.Weight
	}

	return t.entries[len(t.entries)-1].Strategy
}

// sendWithStrategy reports whether the candidate received the answer. A
// failed forward after a delivered answer returns true with the error.
func sendWithStrategy(
	ctx context.Context,
	resolver *platform.Resolver,
	strategy SendStrategy,
	candidate *models.Candidate,
	answer string,
) (bool, error) {
	client := resolver.Client()
	peer := candidate.ExternalUserID

	switch strategy {
	case StrategyAnswerThenForward:
		err := resolver.Call(ctx, func(ctx context.Context) error {
			return client.SendMessage(ctx, peer, answer)
		})
		if err != nil {
			return false, err
		}

		return true, resolver.Call(ctx, func(ctx context.Context) error {
			return client.ForwardMessage(ctx, peer, candidate.SourceChatID, candidate.SourceMessageID)
		})
	case StrategyContextThenAnswer:
		text := answer
		if candidate.ContextText != "" {
			text = candidate.ContextText + "\n\n" + answer
		}

		err := resolver.Call(ctx, func(ctx context.Context) error {
			return client.SendMessage(ctx, peer, text)
		})

		return err == nil, err
	default:
		return false, &customerrors.ErrInvalidArgument{Message: "неизвестная стратегия отправки " + string(strategy)}
	}
}
