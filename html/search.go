package html

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	searchApi "shopsearch.GO/api/search"
	"shopsearch.GO/config"
	parts "shopsearch.GO/html/parts"
	searchService "shopsearch.GO/service/search"

	"errors"
)

// Template is the echo renderer for all HTML pages.
type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// RegisterSearchHTMLRoutes registers the server-rendered search page. It runs
// the same engine as /api/search, so the page and the API never disagree.
func RegisterSearchHTMLRoutes(e *echo.Echo, db *gorm.DB) {
	e.GET("/search", func(c echo.Context) error {
		svc := searchApi.GetService(db)

		res, err := svc.Search(c.Request().Context(), c.QueryParams())
		if err != nil {
			var ve *searchService.ValidationError
			if errors.As(err, &ve) {
				return c.String(http.StatusBadRequest, "Invalid search: "+ve.Message)
			}
			return c.String(http.StatusInternalServerError, "Search failed")
		}

		var pageNumbers []int
		for i := 1; i <= res.Pagination.TotalPages; i++ {
			pageNumbers = append(pageNumbers, i)
		}
		prevPage := res.Pagination.Page - 1
		if prevPage < 1 {
			prevPage = 1
		}
		nextPage := res.Pagination.Page + 1
		if nextPage > res.Pagination.TotalPages {
			nextPage = res.Pagination.TotalPages
		}

		criticalCSS, err := parts.GetCriticalCSSCached()
		if err != nil {
			criticalCSS = ""
		}

		keyword := c.QueryParam("keyword")
		title := "Search - ShopSearch.GO"
		if keyword != "" {
			title = "Search: " + keyword + " - ShopSearch.GO"
		}

		mediaUrl := ""
		if config.AppConfig != nil {
			mediaUrl = config.AppConfig.MediaUrl
		}

		return c.Render(http.StatusOK, "parts/search_layout.html", map[string]interface{}{
			"Title":       title,
			"Keyword":     keyword,
			"Products":    res.Products,
			"Facets":      res.Facets,
			"Pagination":  res.Pagination,
			"PageNumbers": pageNumbers,
			"PrevPage":    prevPage,
			"NextPage":    nextPage,
			"MediaUrl":    mediaUrl,
			"CriticalCSS": template.CSS(criticalCSS),
		})
	})
}

// SearchTemplateFuncs returns FuncMap with helpers for pagination
func SearchTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"until": func(count int) []int {
			s := make([]int, count)
			for i := 0; i < count; i++ {
				s[i] = i
			}
			return s
		},
	}
}
