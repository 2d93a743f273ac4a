package transport

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"weathergate/pkg/weatherapi"
)

// Breaker decorates a weatherapi.Doer with a circuit breaker so
// repeated transport failures stop hitting the upstream API for a
// cooldown window. HTTP responses of any status pass through
// untouched; only failed round trips count against the breaker.
type Breaker struct {
	next    weatherapi.Doer
	breaker *gobreaker.CircuitBreaker
}

func NewBreaker(next weatherapi.Doer, timeout time.Duration, logger *zap.Logger) *Breaker {
	settings := gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &Breaker{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *Breaker) Do(req *http.Request) (*http.Response, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.Do(req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*http.Response), nil
}
