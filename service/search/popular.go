package search

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// PopularTerm is one ranked entry of the popular-searches view.
type PopularTerm struct {
	Term     string    `json:"term"`
	Count    int64     `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// TermCounter counts executed search keywords. Implementations must apply
// Record atomically: N concurrent increments on one term always total N.
type TermCounter interface {
	Record(ctx context.Context, term string) error
	Top(ctx context.Context, limit int) ([]PopularTerm, error)
}

// NormalizeTerm is the shared keyword normalization for counting and
// suggestions: trimmed, case-folded, inner whitespace collapsed.
func NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// --- Redis-backed counter ---

const (
	redisKeyTerms = "popular:terms"
	redisKeySeen  = "popular:terms:seen"
)

// RedisTermCounter keeps counts in a sorted set (ZINCRBY is atomic, concurrent
// searches never lose an increment) and last-seen timestamps in a second one
// for the recency tie-break.
type RedisTermCounter struct {
	client *redis.Client
}

func NewRedisTermCounter(client *redis.Client) *RedisTermCounter {
	return &RedisTermCounter{client: client}
}

func (c *RedisTermCounter) Record(ctx context.Context, term string) error {
	term = NormalizeTerm(term)
	if term == "" {
		return nil
	}
	if err := c.client.ZIncrBy(ctx, redisKeyTerms, 1, term).Err(); err != nil {
		return err
	}
	return c.client.ZAdd(ctx, redisKeySeen, redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: term,
	}).Err()
}

func (c *RedisTermCounter) Top(ctx context.Context, limit int) ([]PopularTerm, error) {
	if limit < 1 {
		return []PopularTerm{}, nil
	}
	// Over-fetch so equal counts can be re-broken by recency
	zs, err := c.client.ZRevRangeWithScores(ctx, redisKeyTerms, 0, int64(limit*3)-1).Result()
	if err != nil {
		return nil, err
	}
	terms := make([]PopularTerm, 0, len(zs))
	for _, z := range zs {
		term, _ := z.Member.(string)
		seen, err := c.client.ZScore(ctx, redisKeySeen, term).Result()
		if err != nil && err != redis.Nil {
			return nil, err
		}
		terms = append(terms, PopularTerm{
			Term:     term,
			Count:    int64(z.Score),
			LastSeen: time.Unix(0, int64(seen)),
		})
	}
	sortPopular(terms)
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms, nil
}

// --- In-memory counter ---

// MemoryTermCounter is the fallback when Redis is not configured, and the
// counter used by tests.
type MemoryTermCounter struct {
	mu    sync.Mutex
	terms map[string]*PopularTerm
}

func NewMemoryTermCounter() *MemoryTermCounter {
	return &MemoryTermCounter{terms: make(map[string]*PopularTerm)}
}

func (c *MemoryTermCounter) Record(ctx context.Context, term string) error {
	term = NormalizeTerm(term)
	if term == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.terms[term]
	if !ok {
		t = &PopularTerm{Term: term}
		c.terms[term] = t
	}
	t.Count++
	t.LastSeen = time.Now()
	return nil
}

func (c *MemoryTermCounter) Top(ctx context.Context, limit int) ([]PopularTerm, error) {
	if limit < 1 {
		return []PopularTerm{}, nil
	}
	c.mu.Lock()
	terms := make([]PopularTerm, 0, len(c.terms))
	for _, t := range c.terms {
		terms = append(terms, *t)
	}
	c.mu.Unlock()
	sortPopular(terms)
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms, nil
}

// Seed restores counts from a persisted snapshot. Existing counts win.
func (c *MemoryTermCounter) Seed(terms []PopularTerm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range terms {
		if _, ok := c.terms[t.Term]; !ok {
			seeded := t
			c.terms[t.Term] = &seeded
		}
	}
}

// sortPopular orders by count desc, most recently recorded first on ties.
func sortPopular(terms []PopularTerm) {
	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].LastSeen.After(terms[j].LastSeen)
	})
}
