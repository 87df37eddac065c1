package httputil

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/matthew11k/outreach/internal/config"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
)

// StatusFloodWait is the gateway's answer for a platform FLOOD_WAIT.
const StatusFloodWait = 420

// NewResilientClient builds the resty client used for the platform gateway:
// bounded retries on transport errors and configured statuses, with a circuit
// breaker in front of the transport.
func NewResilientClient(cfg *config.Config, logger *slog.Logger, serviceName string) *resty.Client {
	client := resty.New()

	client.SetTimeout(cfg.ExternalRequestTimeout)

	client.SetRetryCount(cfg.RetryCount)
	client.SetRetryWaitTime(cfg.RetryBackoff)
	client.SetRetryMaxWaitTime(cfg.RetryBackoff * 5)

	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return !isBreakerRejection(err)
		}

		// повтор flood wait только продлевает бан
		if r.StatusCode() == StatusFloodWait || r.StatusCode() == http.StatusTooManyRequests {
			return false
		}

		return slices.Contains(cfg.RetryableStatusCodes, r.StatusCode())
	})

	client.SetTransport(&BreakerTransport{
		breaker: newBreaker(cfg, logger, serviceName),
		next:    http.DefaultTransport,
		logger:  logger,
		service: serviceName,
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.Request.Attempt > 1 {
			logger.Info("Повторный запрос к внешнему сервису",
				"service", serviceName,
				"url", resp.Request.URL,
				"attempt", resp.Request.Attempt,
				"status", resp.StatusCode(),
			)
		}

		return nil
	})

	return client
}

func newBreaker(cfg *config.Config, logger *slog.Logger, serviceName string) *gobreaker.CircuitBreaker {
	minCalls := uint32(max(cfg.CBMinimumRequiredCalls, 1)) //nolint:gosec // G115: значение из конфига
	threshold := float64(cfg.CBFailureRateThreshold) / 100.0

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: uint32(max(cfg.CBPermittedCallsInHalfOpen, 1)), //nolint:gosec // G115: значение из конфига
		Interval:    time.Duration(cfg.CBSlidingWindowSize) * time.Second,
		Timeout:     cfg.CBWaitDurationInOpenState,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minCalls {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Изменилось состояние circuit breaker",
				"service", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// BreakerTransport counts 5xx answers and transport errors as breaker failures.
// Platform errors such as 403 or 420 are regular answers and pass through.
type BreakerTransport struct {
	breaker *gobreaker.CircuitBreaker
	next    http.RoundTripper
	logger  *slog.Logger
	service string
}

func (t *BreakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	result, err := t.breaker.Execute(func() (interface{}, error) {
		resp, err := t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			_ = resp.Body.Close()
			return nil, &customerrors.HTTPError{StatusCode: resp.StatusCode}
		}

		return resp, nil
	})
	if err != nil {
		if isBreakerRejection(err) {
			t.logger.Warn("Circuit breaker открыт, запрос отклонен",
				"service", t.service,
				"url", req.URL.String(),
			)
		}

		return nil, err
	}

	return result.(*http.Response), nil
}
