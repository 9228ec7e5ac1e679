package main

// Exit codes returned by the scholar CLI.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad scholar.yml, invalid paths)
	ExitFetchError  = 3 // Extraction aborted (retry budget exhausted)
	ExitNotFound    = 4 // Requested profile not cached or archived
)
