package hub

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-actuator rate limiters: actuator_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(actuatorID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[actuatorID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[actuatorID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(actuatorID string, actuatorRate rate.Limit, actuatorBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[actuatorID] = rate.NewLimiter(actuatorRate, actuatorBurst)
}
