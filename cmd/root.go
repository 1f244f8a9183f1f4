/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/MOYARU/parameterx/internal/app/scan"
	"github.com/MOYARU/parameterx/internal/app/ui"
	"github.com/MOYARU/parameterx/internal/config"
	"github.com/MOYARU/parameterx/internal/logger"
	msges "github.com/MOYARU/parameterx/internal/messages"
	appver "github.com/MOYARU/parameterx/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = appver.Value

	verbose      bool
	noColor      bool
	settingsPath string
	reportPath   string
)

var rootCmd = &cobra.Command{
	Use:           "parameterx <url>",
	Short:         "ParameterX discovers HTTP parameters and flags the ones whose removal changes the response.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		stderr := cmd.ErrOrStderr()
		ui.PrintBanner(stderr, ui.ColorEnabled(os.Stderr), msges.GetUIMessage("Tagline"))

		log := logger.New(stderr, verbose)

		settings, err := config.LoadSettings(settingsPath)
		if err != nil {
			return errors.New(msges.GetUIMessage("SettingsFailed", err))
		}
		if reportPath != "" {
			settings.ReportFile = reportPath
		}

		_, err = scan.RunScan(context.Background(), strings.TrimSpace(args[0]), scan.Options{
			Settings: settings,
			Logger:   log,
			Stdout:   cmd.OutOrStdout(),
			Stderr:   stderr,
		})
		if err != nil {
			return errors.New(msges.GetUIMessage("ScanFailed", err))
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		ui.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (diff statistics, candidate sources)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.Flags().StringVar(&settingsPath, "config", config.DefaultSettingsFile, "Settings file (ignored when missing)")
	rootCmd.Flags().StringVarP(&reportPath, "output", "o", "", "Report file (default \"parameterx_report.json\")")

	rootCmd.Long = ui.AsciiArt + `
ParameterX collects candidate parameters from the target URL, from the HTML
forms of the baseline response and from a built-in wordlist, then re-requests
the target once per candidate with that parameter removed. Each response is
compared with the baseline; the lower the similarity, the higher the risk.

Usage:
   parameterx <url> [flags]

Example:
  parameterx "https://example.com/account?id=42&role=user"
  parameterx "https://example.com/search?q=test" --verbose

Findings are printed as JSON to stdout and saved to parameterx_report.json.

` + msges.GetUIMessage("LegalNotice") + `
`
}
