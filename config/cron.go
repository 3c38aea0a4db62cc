package config

import (
	"shopsearch.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"popularsnapshot": {Schedule: "0 * * * *", Job: jobs.PopularTermsSnapshotJob},
	"warmcatalog":     {Schedule: "@every 15m", Job: jobs.WarmCatalogCacheJob},
	// Add more jobs here
}
