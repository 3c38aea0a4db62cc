package catalog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"shopsearch.GO/api"
	catalogService "shopsearch.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/catalog")

	// POST /api/catalog/import – bulk product upsert (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Items     []catalogService.ProductInput `json:"items"`
			BatchSize int                           `json:"batch_size"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		res, err := catalogService.ImportItems(db, body.Items, catalogService.ImportOptions{BatchSize: body.BatchSize})
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"created":             res.Created,
			"updated":             res.Updated,
			"skipped":             res.Skipped,
			"warnings":            res.Warnings,
			"request_duration_ms": duration,
		})
	})
}
