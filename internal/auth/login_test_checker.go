package auth

import (
	"context"
	"sync"
)

// LoginTestChecker is an in-memory Checker for tests and local runs without redis.
type LoginTestChecker struct {
	mu             sync.RWMutex
	loggedSessions map[string]bool
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		loggedSessions: map[string]bool{},
	}
}

func (c *LoginTestChecker) SetLogged(token string, logged bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loggedSessions[token] = logged
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loggedSessions[token], nil
}
