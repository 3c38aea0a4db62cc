package api

import (
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"shopsearch.GO/core/registry"
)

var regMu sync.Mutex

// ModuleFunc mounts routes on the authenticated /api group. Modules get the
// shared DB handle and register themselves from init().
type ModuleFunc func(g *echo.Group, db *gorm.DB)

// RouteFunc mounts routes on the root Echo instance. Used for public
// surfaces: health checks, HTML pages, custom extensions.
type RouteFunc func(e *echo.Echo, db *gorm.DB)

// RegisterModule queues an /api module for ApplyModules. Panics once the
// module registry is locked.
func RegisterModule(fn ModuleFunc) {
	regMu.Lock()
	defer regMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryAPI) {
		panic("api/registry: module registration after startup")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, append(modules(), fn))
}

// RegisterRoute queues a root-level route module for ApplyRoutes.
func RegisterRoute(fn RouteFunc) {
	regMu.Lock()
	defer regMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryRoutes) {
		panic("api/registry: route registration after startup")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryRoutes, append(routes(), fn))
}

// RegisterGET queues a single public GET handler.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *gorm.DB) {
		e.GET(path, handler)
	})
}

// ApplyModules mounts every queued /api module and locks the registry.
func ApplyModules(g *echo.Group, db *gorm.DB) {
	for _, fn := range modules() {
		fn(g, db)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// ApplyRoutes mounts every queued root-level route and locks the registry.
func ApplyRoutes(e *echo.Echo, db *gorm.DB) {
	for _, fn := range routes() {
		fn(e, db)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}

func modules() []ModuleFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryAPI); ok && v != nil {
		return v.([]ModuleFunc)
	}
	return nil
}

func routes() []RouteFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryRoutes); ok && v != nil {
		return v.([]RouteFunc)
	}
	return nil
}
