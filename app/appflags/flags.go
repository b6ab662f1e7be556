package appflags

import (
	// Internal
	flags "github.com/salsaflow/versionify/flag"
	"github.com/salsaflow/versionify/log"

	// Vendor
	"github.com/spf13/pflag"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

var (
	FlagConfig string
	FlagLog    *flags.StringEnumFlag = flags.NewStringEnumFlag(
		log.LevelStrings(), log.MustLevelToString(log.Info))
	FlagLogFormat *flags.StringEnumFlag = flags.NewStringEnumFlag(
		[]string{LogFormatConsole, LogFormatJSON}, LogFormatConsole)
)

func RegisterGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&FlagConfig, "config", FlagConfig, "use a custom configuration file")
	flags.Var(FlagLog, "log", "set logging verbosity; {trace|debug|verbose|info|off}")
	flags.Var(FlagLogFormat, "log_format", "set log output format; {console|json}")
}
