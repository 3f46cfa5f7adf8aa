package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/monetary_correction_app/internal/adapters/ipeadata"
	portsrepo "github.com/SscSPs/monetary_correction_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/core/services"
	"github.com/SscSPs/monetary_correction_app/internal/platform/config"
	"github.com/SscSPs/monetary_correction_app/internal/utils"
	"github.com/spf13/cobra"
)

var verbose bool

// cli carries the services shared by every subcommand.
type cli struct {
	services  *portssvc.ServiceContainer
	formatter utils.DisplayFormatter
}

// NewRootCmd builds the command tree on top of services.
func NewRootCmd(container *portssvc.ServiceContainer, locale string) *cobra.Command {
	app := &cli{
		services:  container,
		formatter: utils.NewDisplayFormatter(locale),
	}

	rootCmd := &cobra.Command{
		Use:   "mcorr",
		Short: "Monetary correction for Brazilian amounts",
		Long: `mcorr corrects a nominal amount between two months using a Brazilian
price index, converting across currency eras (Cr$, Cz$, NCz$, CR$, R$).

Index data is downloaded from Ipeadata on demand.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newCorrectCmd(app),
		newCompareCmd(app),
		newIndicesCmd(app),
		newErasCmd(app),
		versionCmd,
	)
	return rootCmd
}

// Execute loads configuration, wires the services and runs the CLI.
func Execute() error {
	// Keep routine service logs off the terminal unless --verbose is set.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.LoadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	fetcher := ipeadata.NewClient(ipeadata.Config{
		BaseURL: cfg.IpeadataBaseURL,
		Timeout: cfg.IpeadataTimeout,
	})
	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{SeriesFetcher: fetcher})

	return NewRootCmd(container, cfg.DisplayLocale).Execute()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
