package cron

import (
	"testing"
)

func TestRegister_JobAppearsAndRuns(t *testing.T) {
	var got []string
	Register("snapshotprobe", "@every 30m", func(args ...string) {
		got = append(got, args...)
		got = append(got, "ran")
	})
	defer Unregister("snapshotprobe")

	job, ok := Jobs()["snapshotprobe"]
	if !ok {
		t.Fatal("snapshotprobe missing from Jobs()")
	}
	if job.Schedule != "@every 30m" {
		t.Errorf("Schedule = %q, want @every 30m", job.Schedule)
	}
	job.Run("manual")
	if len(got) != 2 || got[0] != "manual" || got[1] != "ran" {
		t.Errorf("job run args = %v", got)
	}
}

func TestRegister_DuplicateNamePanics(t *testing.T) {
	Register("snapshotdup", "@hourly", func(...string) {})
	defer Unregister("snapshotdup")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("snapshotdup", "@daily", func(...string) {})
}

func TestJobs_ReturnsCopy(t *testing.T) {
	Register("copyprobe", "@hourly", func(...string) {})
	defer Unregister("copyprobe")

	jobs := Jobs()
	delete(jobs, "copyprobe")
	if _, ok := Jobs()["copyprobe"]; !ok {
		t.Error("mutating the Jobs() result should not affect the registry")
	}
}
