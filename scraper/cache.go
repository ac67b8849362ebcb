package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
)

const cacheKeyPrefix = "jobfeed:scrape:"

// CachedScraper serves repeated queries from Redis. Cache failures are logged
// and fall through to the wrapped scraper.
type CachedScraper struct {
	next Scraper
	rdb  *redis.Client
	ttl  time.Duration
}

// NewCachedScraper wraps next with a Redis cache.
func NewCachedScraper(next Scraper, rdb *redis.Client, ttl time.Duration) *CachedScraper {
	return &CachedScraper{next: next, rdb: rdb, ttl: ttl}
}

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// CacheKey builds a deterministic key for q.
func CacheKey(q Query) string {
	raw, _ := json.Marshal(q)
	hash := sha256.Sum256(raw)
	return fmt.Sprintf("%s%x", cacheKeyPrefix, hash[:12])
}

func (s *CachedScraper) Scrape(ctx context.Context, q Query) ([]models.JobRecord, error) {
	log := logger.Component("scrape-cache")
	key := CacheKey(q)

	data, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var jobs []models.JobRecord
		if json.Unmarshal(data, &jobs) == nil {
			log.Debug().Str("key", key).Str("term", q.SearchTerm).Msg("Cache hit")
			return jobs, nil
		}
		log.Warn().Str("key", key).Msg("Discarding corrupt cache entry")
	case errors.Is(err, redis.Nil):
	default:
		log.Warn().Err(err).Msg("Cache read failed")
	}

	jobs, err := s.next.Scrape(ctx, q)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(jobs); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("Cache write failed")
		}
	}
	return jobs, nil
}
