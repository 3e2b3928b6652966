package internal

const (
	// Version is the library version reported in the default user agent.
	Version = "0.7.4"

	UserAgent = "torn-api/" + Version
)
