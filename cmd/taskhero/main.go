// Package main is the single-binary entrypoint for TaskHero.
// TaskHero turns done tasks into XP, streaks, and achievements.
package main

import "github.com/taskhero/taskhero/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
