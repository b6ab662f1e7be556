package announceCmd

import (
	// Stdlib
	"fmt"
	"io"
	"os"
	"strings"

	// Internal
	"github.com/salsaflow/versionify/app"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules"

	// Vendor
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "announce [--comment] [--version=NAME] [--channel=ID]... [MESSAGE|-]",
	Short: "announce a release",
	Long: fmt.Sprintf(`
  Announce a release through the configured channels.

  MESSAGE is the text to announce, '-' reads the text from stdin.
  When MESSAGE is omitted, the changelog of the version is announced.
  The open version is used unless --version is specified.

  A status post is published only once per version. Following announcements
  are skipped for status channels, unless --comment is set, in which case
  the message is posted as a comment on the original post.
  Chat channels get every message.

  Available channels: %v
	`, strings.Join(modules.AvailableChannelIds(), ", ")),
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

var (
	flagChannels []string
	flagComment  bool
	flagVersion  string
)

func init() {
	Command.Flags().StringSliceVar(&flagChannels, "channel", flagChannels,
		"announce only through the given channel")
	Command.Flags().BoolVar(&flagComment, "comment", flagComment,
		"comment on the existing post")
	Command.Flags().StringVar(&flagVersion, "version", flagVersion,
		"version to announce")
}

func run(cmd *cobra.Command, args []string) {
	app.InitOrDie()

	var message string
	if len(args) == 1 {
		message = args[0]
	}

	if err := runMain(message); err != nil {
		errs.Fatal(err)
	}
}

func runMain(message string) error {
	if message == "-" {
		task := "Read the message from stdin"
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return errs.NewError(task, err)
		}
		message = string(content)
	}

	manager, err := modules.GetAnnouncingReleaseManager(flagChannels...)
	if err != nil {
		return err
	}

	version, err := manager.ResolveVersion(flagVersion)
	if err != nil {
		return err
	}

	if strings.TrimSpace(message) == "" {
		changelog, err := manager.Changelog(version)
		if err != nil {
			return err
		}
		message = fmt.Sprintf("Version %v released\n\n%v", version.Name, changelog)
	}

	if err := manager.Announce(message, version, flagComment); err != nil {
		return errs.NewError(fmt.Sprintf("Announce version '%v'", version.Name), err)
	}
	log.Ok(fmt.Sprintf("Version '%v' announced", version.Name))
	return nil
}
