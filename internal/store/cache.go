package store

import (
	"context"
	"sync"

	"github.com/abhisek/cragcoach/internal/profile"
)

// ProfileCache holds the current climber's profile in memory in front of a
// ProfileRepo. It is safe for concurrent use.
type ProfileCache struct {
	repo ProfileRepo

	mu      sync.RWMutex
	current *profile.Profile
}

// NewProfileCache returns an empty cache over repo.
func NewProfileCache(repo ProfileRepo) *ProfileCache {
	return &ProfileCache{repo: repo}
}

// FetchProfile loads the profile for email and caches it. When no profile is
// stored it returns nil and leaves the cache untouched.
func (c *ProfileCache) FetchProfile(ctx context.Context, email string) (*profile.Profile, error) {
	p, err := c.repo.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if p != nil {
		c.mu.Lock()
		c.current = p.Clone()
		c.mu.Unlock()
	}
	return p, nil
}

// CurrentProfile returns a copy of the cached profile, or nil.
func (c *ProfileCache) CurrentProfile() *profile.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Clone()
}

// ReplaceProfile swaps the cached profile. It does not write to the repo.
func (c *ProfileCache) ReplaceProfile(p *profile.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = p.Clone()
}
