package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	airmac "github.com/dogeorg/airmac/pkg"
	"github.com/dogeorg/airmac/pkg/render"
	"github.com/dogeorg/airmac/pkg/system/network"
	"github.com/dogeorg/airmac/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = NewRootCmd(func(log *logrus.Logger) airmac.WifiScanner {
	return network.NewWifiScanner(log)
})

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.OutOrStdout(), "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the airmac command around whatever scanner newScanner
// returns. Unknown flags and arguments are ignored.
func NewRootCmd(newScanner func(*logrus.Logger) airmac.WifiScanner) *cobra.Command {
	var config airmac.Config

	cmd := &cobra.Command{
		Use:                "airmac",
		Short:              "Scan for nearby WiFi networks",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			log := newLogger(out)
			fmt.Fprintln(out, getScanResults(newScanner(log), log, config.JSON))
		},
	}

	cmd.Flags().BoolVarP(&config.JSON, "json", "j", false, "Output in JSON format")
	cmd.Flags().BoolP("help", "h", false, "Show this help message")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printHelp(c.OutOrStdout())
	})

	return cmd
}

// One scan, no retries. Any scan error is logged and rendered as no networks.
func getScanResults(scanner airmac.WifiScanner, log *logrus.Logger, asJSON bool) string {
	networks, err := scanner.Scan()
	if err != nil {
		if errors.Is(err, airmac.ErrNoInterface) {
			log.WithError(err).Warn("no interface")
		} else {
			log.WithError(err).Warn("scan failed")
		}
		networks = nil
	}

	records := airmac.SortBySSID(airmac.NewNetworkRecords(networks))
	return render.ScanResults(records, asJSON)
}

func newLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func printHelp(out io.Writer) {
	fmt.Fprintf(out, `AirMac WiFi Scanner
Usage: airmac [options]

Options:
  -j, --json     Output in JSON format
  -h, --help     Show this help message

Version: %s
`, version.GetRelease())
}
