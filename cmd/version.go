package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the testrunner version, the Go version it was built with and its source revision.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders the build info, one "key\tvalue" pair per line.
func versionLines(info *debug.BuildInfo) []string {
	if info == nil {
		return []string{"testrunner\tunknown"}
	}

	version := info.Main.Version
	if version == "" {
		version = "unknown"
	}

	lines := []string{
		"testrunner\t" + version,
		"go\t" + info.GoVersion,
	}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision != "" {
		if modified == "true" {
			revision += " (modified)"
		}

		lines = append(lines, "revision\t"+revision)
	}

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
