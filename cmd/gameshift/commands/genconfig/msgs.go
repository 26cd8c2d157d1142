package genconfig

// Message constants
const (
	MsgShort   = "Print the effective configuration as TOML"
	MsgLong    = "Print the configuration gameshift would run with (defaults, config file and GAMESHIFT_* environment merged) as TOML.\n\nWith -w it is written to the user config file instead, which must not exist yet."
	MsgExample = `  gameshift gen-config                 # Output to stdout
  gameshift gen-config -w              # Write to $XDG_CONFIG_HOME/gameshift/config.toml`
	MsgWritten = "Wrote configuration to %s\n"
)
