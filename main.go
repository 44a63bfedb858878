package main

import (
	"create-starter/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// create-starter scaffolds a new project from a starter repository:
//   - Clones the starter with git into the target directory (shallow, with submodules)
//   - Rewrites the cloned package.json so the project carries its own identity
//   - Picks npm or yarn based on the calling agent and the saved preference,
//     falling back to npm when yarn is not installed
//   - Installs the starter's dependencies plus any extra packages requested
//
// Error handling strategy:
//   - Every stage reports through a single sink; the first failing stage stops the run
//     and is reported exactly once
//   - Cleanup problems (for example a partial clone that cannot be removed) are surfaced
//     as diagnostics without replacing the original failure
//   - The process exits non-zero when initialization fails
func main() {
	cmd.Execute()
}
