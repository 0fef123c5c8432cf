package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// limiterPool keeps one token bucket per user for assisted creation.
// Idle entries expire so the pool stays bounded.
type limiterPool struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newLimiterPool(requestsPerMin int) *limiterPool {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &limiterPool{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique users
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (p *limiterPool) Allow(key string) bool {
	limiter, ok := p.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(p.rate, p.burst)
		p.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
