//go:build cli
// +build cli

package main

import (
	_ "shopsearch.GO/custom"

	"shopsearch.GO/cmd"
	"shopsearch.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
