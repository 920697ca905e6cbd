// Package main is the single-binary entrypoint for dayflow.
package main

import "github.com/dayflow-app/dayflow/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
