package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerTimeFrame int
	Burst                int
	TimeFrame            time.Duration
	Enabled              bool
}

// Limiter keeps one token bucket per client IP. A bucket refills
// RequestsPerTimeFrame tokens every TimeFrame and holds at most Burst.
type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type TokenBucketLimiter struct {
	sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

func NewTokenBucketLimiter(cfg Config) *TokenBucketLimiter {
	frame := cfg.TimeFrame
	if frame <= 0 {
		frame = time.Second
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.RequestsPerTimeFrame, 1)
	}
	return &TokenBucketLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(cfg.RequestsPerTimeFrame) / frame.Seconds()),
		burst:    burst,
		idle:     10 * frame,
		now:      time.Now,
	}
}

// Allow spends a token for ip. When the bucket is empty it reports how long
// until the next token is available.
func (rl *TokenBucketLimiter) Allow(ip string) (bool, time.Duration) {
	now := rl.now()

	rl.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.Unlock()

	r := v.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Second
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Cleanup forgets visitors idle for longer than ten time frames. Run it from a
// ticker; it returns how many were dropped.
func (rl *TokenBucketLimiter) Cleanup() int {
	cutoff := rl.now().Add(-rl.idle)

	rl.Lock()
	defer rl.Unlock()

	dropped := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			dropped++
		}
	}
	return dropped
}

// Run calls Cleanup every interval until stop is closed.
func (rl *TokenBucketLimiter) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-stop:
			return
		}
	}
}
