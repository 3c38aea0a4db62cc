package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
)

var (
	keywordMatcherInstance *KeywordMatcher
	keywordMatcherOnce     sync.Once
)

// GetKeywordMatcher returns the singleton KeywordMatcher.
func GetKeywordMatcher() *KeywordMatcher {
	keywordMatcherOnce.Do(func() {
		keywordMatcherInstance = NewKeywordMatcher()
	})
	return keywordMatcherInstance
}

// KeywordMatcher resolves a keyword to a candidate entity-ID set via
// Elasticsearch. Optional: when ELASTICSEARCH_HOST is unset or the client
// cannot be built, Enabled is false and the planner falls back to the SQL
// substring match.
type KeywordMatcher struct {
	client *elasticsearch.Client
	index  string
}

func NewKeywordMatcher() *KeywordMatcher {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		return &KeywordMatcher{}
	}
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "shopsearch_catalog_product"
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &KeywordMatcher{index: index}
	}
	return &KeywordMatcher{client: client, index: index}
}

// Enabled reports whether the Elasticsearch path is available.
func (m *KeywordMatcher) Enabled() bool {
	return m != nil && m.client != nil
}

// MatchIDs returns the entity IDs whose name or description match the keyword.
// maxHits caps the candidate set.
func (m *KeywordMatcher) MatchIDs(ctx context.Context, keyword string, maxHits int) ([]uint, error) {
	if !m.Enabled() {
		return nil, fmt.Errorf("elasticsearch not configured")
	}
	if maxHits <= 0 {
		maxHits = 1000
	}

	body := map[string]interface{}{
		"size":    maxHits,
		"_source": []string{"entity_id"},
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"name^3", "sku^2", "description"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := m.client.Search(
		m.client.Search.WithContext(ctx),
		m.client.Search.WithIndex(m.index),
		m.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		if entityID, ok := hit.Source["entity_id"].(float64); ok {
			ids = append(ids, uint(entityID))
		}
	}
	return ids, nil
}
