package cli

// Exit codes for CLI commands, following Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: storage failures or anything
	// that doesn't fit the categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage: missing flags, bad
	// flag syntax, non-numeric ids.
	ExitUsage = 2

	// ExitNotFound indicates the target task or column does not exist.
	ExitNotFound = 3

	// ExitValidation indicates field values failed the schema's rules.
	ExitValidation = 5
)
