package changesCmd

import (
	// Stdlib
	"fmt"
	"os"
	"strings"

	// Internal
	"github.com/salsaflow/versionify/app"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/flag"
	"github.com/salsaflow/versionify/modules"
	"github.com/salsaflow/versionify/releases/notes"

	// Vendor
	"github.com/spf13/cobra"
)

const formatChangelog = "changelog"

var Command = &cobra.Command{
	Use:   "changes [--format=FORMAT] [--pretty] [VERSION]",
	Short: "print the changes in a version",
	Long: fmt.Sprintf(`
  Print the issues assigned to VERSION.
  The open version is used when VERSION is omitted.

  The default format prints one line per issue:

    - [KEY](URL) - SUMMARY

  Supported formats: %v
	`, strings.Join(formats(), ", ")),
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

var (
	flagFormat = flag.NewStringEnumFlag(formats(), formatChangelog)
	flagPretty bool
)

func init() {
	Command.Flags().Var(flagFormat, "format", "output format")
	Command.Flags().BoolVar(&flagPretty, "pretty", flagPretty, "pretty-print the output")
}

func formats() []string {
	return append([]string{formatChangelog}, notes.AvailableEncodings()...)
}

func run(cmd *cobra.Command, args []string) {
	app.InitOrDie()

	var name string
	if len(args) == 1 {
		name = args[0]
	}

	if err := runMain(name); err != nil {
		errs.Fatal(err)
	}
}

func runMain(versionName string) error {
	manager, err := modules.GetReleaseManager()
	if err != nil {
		return err
	}

	version, err := manager.ResolveVersion(versionName)
	if err != nil {
		return err
	}

	// Print the changelog.
	if flagFormat.Value() == formatChangelog {
		changelog, err := manager.Changelog(version)
		if err != nil {
			return err
		}
		fmt.Print(changelog)
		return nil
	}

	// Dump the release notes.
	changes, err := manager.Changes(version)
	if err != nil {
		return err
	}

	task := "Encode the release notes"
	encoder, err := notes.NewEncoder(notes.Encoding(flagFormat.Value()), os.Stdout)
	if err != nil {
		return errs.NewError(task, err)
	}
	if err := encoder.Encode(notes.New(version.Name, changes), &notes.EncodeOptions{
		Pretty: flagPretty,
	}); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
