package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestRegister_CommandAttachedToRoot(t *testing.T) {
	out := &bytes.Buffer{}
	Register(&cobra.Command{
		Use: "catalog:probe",
		Run: func(c *cobra.Command, args []string) {
			out.WriteString("probed")
		},
	})
	Apply()

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"catalog:probe"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.String() != "probed" {
		t.Errorf("output = %q, want probed", out.String())
	}
}
