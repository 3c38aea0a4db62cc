package jobs

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"shopsearch.GO/core/registry"
	searchEntity "shopsearch.GO/model/entity/search"
	popularRepo "shopsearch.GO/model/repository/search"
	searchService "shopsearch.GO/service/search"
)

const snapshotLimit = 500

// PopularTermsSnapshotJob persists the live popular-terms counters into
// search_popular_term so a restart (or a Redis flush) does not lose the
// ranking. No-op until the search service has been built.
func PopularTermsSnapshotJob(args ...string) {
	svc := searchServiceFromRegistry()
	db := dbFromRegistry()
	if svc == nil || db == nil {
		log.Println("[cron] popularsnapshot: search service not ready, skipping")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	terms, err := svc.Counter().Top(ctx, snapshotLimit)
	if err != nil {
		log.Printf("[cron] popularsnapshot: read counters: %v", err)
		return
	}
	if len(terms) == 0 {
		return
	}

	rows := make([]searchEntity.PopularTerm, len(terms))
	for i, t := range terms {
		rows[i] = searchEntity.PopularTerm{Term: t.Term, Count: t.Count, LastSeen: t.LastSeen}
	}
	if err := popularRepo.GetPopularTermRepository(db).UpsertTerms(ctx, rows); err != nil {
		log.Printf("[cron] popularsnapshot: persist: %v", err)
		return
	}
	log.Printf("[cron] popularsnapshot: persisted %d terms", len(terms))
}

func searchServiceFromRegistry() *searchService.Service {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeySearchService); ok {
		if svc, ok := v.(*searchService.Service); ok {
			return svc
		}
	}
	return nil
}

func dbFromRegistry() *gorm.DB {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyAppDB); ok {
		if db, ok := v.(*gorm.DB); ok {
			return db
		}
	}
	return nil
}
