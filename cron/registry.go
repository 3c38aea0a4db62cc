package cron

import (
	"sync"

	"shopsearch.GO/core/registry"
)

// Job pairs a cron schedule expression with the function it runs.
type Job struct {
	Schedule string
	Run      func(...string)
}

var regMu sync.Mutex

// Register queues a cron job under a unique name. Extension packages call
// this from init(); duplicates and post-startup registration panic.
func Register(name string, schedule string, run func(...string)) {
	regMu.Lock()
	defer regMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: registration after StartCron")
	}
	jobs := registered()
	if _, exists := jobs[name]; exists {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister drops a queued job. Tests only.
func Unregister(name string) {
	regMu.Lock()
	defer regMu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := registered()
	delete(jobs, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Jobs returns a copy of the queued jobs and seals the registry on first
// call. The scheduler merges these with config.CronJobs.
func Jobs() map[string]Job {
	out := make(map[string]Job)
	for name, job := range registered() {
		out[name] = job
	}
	if !registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	}
	return out
}

func registered() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}
