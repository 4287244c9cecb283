// jobsignal decodes job postings and compares resumes against them from the command line.
// Same engine as the MCP server, no network access.
package main

import (
	"os"

	"github.com/anatolykoptev/go_jobsignal/cmd/jobsignal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
