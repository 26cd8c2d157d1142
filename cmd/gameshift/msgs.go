package gameshift

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Move installed games between drives without breaking the launcher"
	MsgListShort         = "List installed games grouped by location"
	MsgMoveShort         = "Move one game to a new base directory"
	MsgMoveAllShort      = "Move every game to a new base directory"
	MsgDestinationsShort = "Show the configured destination menu"
	MsgDestinationsLong  = "Destinations are the base directories offered by interactive mode, set with the destinations key of the config file."
	MsgVersionShort      = "Print version information"

	// Prompts
	MsgPromptGame        = "\nEnter the index number of the game you want to move or 'all' to move all games: "
	MsgPromptDestination = "\nEnter your choice (1-%d): "
	MsgSelectedGame      = "\nSelected game:"
	MsgChooseDestination = "\nChoose a destination:"
	MsgInteractiveNotice = "No command provided, running in interactive mode."

	// Status messages
	MsgDryRunNotice = "DRY RUN MODE - nothing will be copied, deleted or written"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show what would be moved without changing anything"
	MsgFlagCatalog = "Path to the launcher catalog (GameInstallInfo.sqlite)"
	MsgFlagConfig  = "Path to a config file (default $XDG_CONFIG_HOME/gameshift/config.toml)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/move-long.txt
	msgMoveLongRaw string
	MsgMoveLong    = strings.TrimSpace(msgMoveLongRaw)

	//go:embed msgs/move-example.txt
	msgMoveExampleRaw string
	MsgMoveExample    = strings.TrimRight(msgMoveExampleRaw, "\n")

	//go:embed msgs/move-all-long.txt
	msgMoveAllLongRaw string
	MsgMoveAllLong    = strings.TrimSpace(msgMoveAllLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
