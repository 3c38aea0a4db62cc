package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public API paths (search surface is read-only, no auth)
	return []string{"/api/search", "/api/search/suggest", "/api/search/popular", "/graphql"}
}
