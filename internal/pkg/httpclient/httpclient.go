package httpclient

import (
	"travel-booking-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerConsecutive = "consecutive"
	BreakerErrorRate   = "error_rate"
	BreakerThreshold   = "threshold"
)

// InitCircuitBreaker picks the trip strategy for outgoing calls.
func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case BreakerErrorRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.ConsecutiveFails)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFails)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, nil)
}
