package cmd

import (
	"github.com/spf13/cobra"

	"shopsearch.GO/core/registry"
)

// Register queues a cobra command for attachment to the root command.
// Extension packages call this from init(); Apply seals the set.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: registration after Apply")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(queued(), c))
}

// Apply attaches every queued command to root and seals the registry.
func Apply() {
	for _, c := range queued() {
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}

func queued() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}
