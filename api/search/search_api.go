package search

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"shopsearch.GO/api"
	"shopsearch.GO/config"
	"shopsearch.GO/core/registry"
	catalogRepo "shopsearch.GO/model/repository/catalog"
	popularRepo "shopsearch.GO/model/repository/search"
	searchService "shopsearch.GO/service/search"
)

func init() {
	api.RegisterModule(RegisterSearchRoutes)
}

// Singleton engine (created once per process)
var (
	serviceInstance *searchService.Service
	serviceOnce     sync.Once
)

// GetService builds the search engine: GORM-backed catalog store, Redis term
// counter when Redis is configured (in-memory fallback seeded from the
// snapshot table otherwise), optional Elasticsearch keyword matcher.
func GetService(db *gorm.DB) *searchService.Service {
	serviceOnce.Do(func() {
		opts := searchService.Options{}
		if config.AppConfig != nil {
			opts = searchService.Options{
				DefaultLimit: config.AppConfig.DefaultPageSize,
				MaxLimit:     config.AppConfig.MaxPageSize,
				SuggestLimit: config.AppConfig.SuggestLimit,
				Timeout:      config.AppConfig.SearchTimeout,
			}
		}

		var counter searchService.TermCounter
		if config.RedisClient != nil {
			counter = searchService.NewRedisTermCounter(config.RedisClient)
		} else {
			mem := searchService.NewMemoryTermCounter()
			if terms, err := popularRepo.GetPopularTermRepository(db).Load(config.RedisCtx(), 1000); err == nil {
				seed := make([]searchService.PopularTerm, len(terms))
				for i, t := range terms {
					seed[i] = searchService.PopularTerm{Term: t.Term, Count: t.Count, LastSeen: t.LastSeen}
				}
				mem.Seed(seed)
			}
			counter = mem
		}

		serviceInstance = searchService.NewService(
			catalogRepo.GetCatalogRepository(db),
			counter,
			searchService.GetKeywordMatcher(),
			opts,
		)

		// Publish handles for cron jobs (avoids an import cycle through config)
		registry.GlobalRegistry.SetGlobal(registry.KeyAppDB, db)
		registry.GlobalRegistry.SetGlobal(registry.KeySearchService, serviceInstance)
	})
	return serviceInstance
}

func RegisterSearchRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/search")

	// GET /api/search – faceted product search
	g.GET("", func(c echo.Context) error {
		start := time.Now()
		svc := GetService(db)

		res, err := svc.Search(c.Request().Context(), c.QueryParams())
		if err != nil {
			return searchError(c, err, start)
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, res)
	})

	// GET /api/search/suggest?keyword=pr&limit=5 – autocomplete
	g.GET("/suggest", func(c echo.Context) error {
		start := time.Now()
		svc := GetService(db)

		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		suggestions, err := svc.Suggest(c.Request().Context(), c.QueryParam("keyword"), limit)
		if err != nil {
			return searchError(c, err, start)
		}
		return c.JSON(http.StatusOK, echo.Map{"suggestions": suggestions})
	})

	// GET /api/search/popular?limit=10 – top searched terms
	g.GET("/popular", func(c echo.Context) error {
		start := time.Now()
		svc := GetService(db)

		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		terms, err := svc.PopularTerms(c.Request().Context(), limit)
		if err != nil {
			return searchError(c, err, start)
		}
		return c.JSON(http.StatusOK, echo.Map{"terms": terms})
	})
}

// searchError maps engine errors onto HTTP statuses: bad input is the
// caller's to fix, store failures are retryable server errors.
func searchError(c echo.Context, err error, start time.Time) error {
	duration := time.Since(start).Milliseconds()

	var ve *searchService.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
	}
	if errors.Is(err, searchService.ErrStoreTimeout) {
		return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "catalog store timeout", "request_duration_ms": duration})
	}
	var se *searchService.StoreError
	if errors.As(err, &se) {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": se.Error(), "dimension": se.Dimension, "request_duration_ms": duration})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
}
