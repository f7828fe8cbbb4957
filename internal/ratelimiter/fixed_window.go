package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	limit   int
	window  time.Duration
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   limit,
		window:  window,
	}
}

func (rl *FixedWindowRateLimiter) Allow(_ context.Context, key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	count, exists := rl.clients[key]
	if !exists {
		go rl.resetCount(key)
	}

	if count < rl.limit {
		rl.clients[key] = count + 1
		return true, 0
	}

	return false, rl.window
}

func (rl *FixedWindowRateLimiter) resetCount(key string) {
	time.Sleep(rl.window)
	rl.Lock()
	delete(rl.clients, key)
	rl.Unlock()
}
