package jobs

import (
	"context"
	"log"
	"time"
)

// WarmCatalogCacheJob refreshes cached attribute metadata ahead of its TTL so
// searches never block on the attribute read. No-op until the search service
// has been built.
func WarmCatalogCacheJob(args ...string) {
	svc := searchServiceFromRegistry()
	if svc == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := svc.WarmAttributes(ctx); err != nil {
		log.Printf("[cron] warmcatalog: %v", err)
	}
}
