package constants

// Version is set at build time with -ldflags "-X .../constants.Version=...".
var Version = "dev"

const (
	AppName = "instver"

	// EnvPrefix scopes the environment variables read into config.Config.
	EnvPrefix = "INSTVER_"

	DefaultLogLevel = "warn"

	UsageExampleVersion = "v1.1.1.1-stuff-foo"
)
