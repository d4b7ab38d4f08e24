package nix

import (
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
	"go.trai.ch/freshness/internal/core/domain"
)

const (
	breakerInitialInterval = 30 * time.Second
	breakerMaxInterval     = 5 * time.Minute
	breakerMultiplier      = 2.0
)

// breakerSet holds one circuit breaker per source host.
type breakerSet struct {
	threshold int64
	breakers  map[string]*circuit.Breaker
	mu        sync.RWMutex
}

func newBreakerSet(threshold int64) *breakerSet {
	if threshold < 1 {
		threshold = domain.DefaultBreakerThreshold
	}
	return &breakerSet{
		threshold: threshold,
		breakers:  make(map[string]*circuit.Breaker),
	}
}

// get returns or creates the breaker for host.
func (s *breakerSet) get(host string) *circuit.Breaker {
	s.mu.RLock()
	breaker, exists := s.breakers[host]
	s.mu.RUnlock()

	if exists {
		return breaker
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if breaker, exists := s.breakers[host]; exists {
		return breaker
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = breakerInitialInterval
	expBackoff.MaxInterval = breakerMaxInterval
	expBackoff.Multiplier = breakerMultiplier
	expBackoff.Reset()

	breaker = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(s.threshold),
	})

	s.breakers[host] = breaker
	return breaker
}

// states reports "open" or "closed" for every known host.
func (s *breakerSet) states() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make(map[string]string, len(s.breakers))
	for host, breaker := range s.breakers {
		if breaker.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}

// sourceHost groups a flake reference by the host it is fetched from.
func sourceHost(ref string) string {
	parsed, err := url.Parse(ref)
	if err == nil && parsed.Host != "" {
		return parsed.Host
	}
	if scheme, _, ok := strings.Cut(ref, ":"); ok && scheme != "" {
		return scheme
	}
	return ref
}

// isInfrastructure reports whether err means the oracle itself is unusable,
// as opposed to the attribute simply not existing.
func isInfrastructure(err error) bool {
	return errors.Is(err, domain.ErrCommandTimeout) || errors.Is(err, domain.ErrCommandUnavailable)
}
