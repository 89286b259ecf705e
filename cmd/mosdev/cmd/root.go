// Package cmd provides CLI commands for the MOS device manager.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"mos-device-mgr/internal/config"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Global flags. The remaining flags are read through config.Load.
var (
	cfgFile string // Config file path
	debug   bool   // Trace every parsed and derived value
)

// rootCmd represents the base command. It runs the launch file pipeline.
var rootCmd = &cobra.Command{
	Use:   "mosdev -l <devlaunchfile> [-o <output-file>]",
	Short: "MOS device manager - summarize device launch records",
	Long: `mosdev reads a device launch file listing MOS server records
(host, port, user, xmlfile, namespace, mountpoint), keeps the records whose
mount point lies under the base path, derives the relative mount point,
output directory and server model name of each one, and writes a summary
table with one line per device:

  xmlfile;mountpoint;mountpoint2;outputdir;modelname

Examples:
  # Summarize the demonstrator devices
  mosdev -l devices.conf

  # Trace every parsed value and write to a custom file
  mosdev -l devices.conf -o calo.lis -b SuperNEMO:/Demonstrator/CMS/Calorimeter -n

  # Produce an Excel workbook instead of the .lis table
  mosdev -l devices.conf -f excel -o devices.xlsx`,
	Version:       Version,
	Args:          noPositionalArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDevices,
}

// usageError marks command line errors that exit with status 2.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// noPositionalArgs rejects positional arguments as a usage error.
func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{cmd: cmd, err: fmt.Errorf("unexpected argument %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}

// Execute runs the root command and exits the process with its status.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(os.Args[1:]))
}

// execute runs the root command with args and maps the outcome to an exit code.
func execute(args []string) int {
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(rootCmd.ErrOrStderr(), uerr.cmd.UsageString())
		return exitUsage
	}
	return exitFailure
}

// init initializes the root command and its flags.
func init() {
	// Flags shared with the validate command
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "Optional YAML configuration file")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringP("launcher", "l", "", "Device launch file (required)")
	pf.StringP("base-path", "b", config.DefaultBasePath, "Only keep mount points under this path")
	pf.StringP("model-prefix", "p", config.DefaultModelPrefix, "Server model name prefix")
	pf.Bool("skip-malformed", false, "Warn about and skip malformed lines instead of aborting")
	pf.BoolVarP(&debug, "debug", "n", false, "Trace every parsed and derived value")

	rootCmd.Flags().StringP("output-file", "o", config.DefaultOutputFile, "Output summary file")
	rootCmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format (lis, excel, html, yaml)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{cmd: cmd, err: err}
	})

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}
