package cache

import (
	"context"
	"fmt"
	"time"
)

// prefixCertificate namespaces resolved-certificate keys.
const prefixCertificate = "certificate:"

// DefaultCertificateTTL bounds how long a resolution may be served without
// recomputation even when no invalidating mutation was observed.
const DefaultCertificateTTL = 10 * time.Minute

// CertificateCache stores resolved best-grade certificates per student and
// cycle. A nil CertificateCache is valid and disables caching entirely.
type CertificateCache struct {
	cache *Cache
	ttl   time.Duration
}

// NewCertificateCache creates a CertificateCache over a generic Cache.
func NewCertificateCache(cache *Cache, ttl time.Duration) *CertificateCache {
	if ttl <= 0 {
		ttl = DefaultCertificateTTL
	}
	return &CertificateCache{cache: cache, ttl: ttl}
}

func certificateKey(studentID, cycleID int64) string {
	return fmt.Sprintf("%s%d:%d", prefixCertificate, studentID, cycleID)
}

// Get loads a cached resolution into dest. Returns ErrCacheMiss when absent.
func (c *CertificateCache) Get(ctx context.Context, studentID, cycleID int64, dest interface{}) error {
	if c == nil || c.cache == nil {
		return ErrCacheMiss
	}
	return c.cache.Get(ctx, certificateKey(studentID, cycleID), dest)
}

// Set stores a resolution.
func (c *CertificateCache) Set(ctx context.Context, studentID, cycleID int64, value interface{}) error {
	if c == nil || c.cache == nil {
		return nil
	}
	return c.cache.Set(ctx, certificateKey(studentID, cycleID), value, c.ttl)
}

// InvalidateStudent drops every cached resolution for a student. Called
// after any mutation that can change attempt counts or best grades; the next
// read recomputes from current enrollment rows.
func (c *CertificateCache) InvalidateStudent(ctx context.Context, studentID int64) error {
	if c == nil || c.cache == nil {
		return nil
	}
	return c.cache.DeleteByPattern(ctx, fmt.Sprintf("%s%d:*", prefixCertificate, studentID))
}
