package parts

import (
	"log"
	"os"
	"sync"
)

var (
	cssOnce   sync.Once
	cssCached string
	cssErr    error
)

// GetCriticalCSS reads the critical CSS file and returns it as a string.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile("assets/tailwind.min.css")
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}

// GetCriticalCSSCached reads the critical CSS once per process.
func GetCriticalCSSCached() (string, error) {
	cssOnce.Do(func() {
		cssCached, cssErr = GetCriticalCSS()
	})
	return cssCached, cssErr
}
