package mklnk

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mklnk/internal/version"
	"github.com/arthur-debert/mklnk/pkg/config"
	"github.com/arthur-debert/mklnk/pkg/filesystem"
	"github.com/arthur-debert/mklnk/pkg/link"
	"github.com/arthur-debert/mklnk/pkg/logging"
	"github.com/arthur-debert/mklnk/pkg/types"
	"github.com/arthur-debert/mklnk/pkg/ui"
)

// NewRootCmd creates and returns the root command backed by the real
// platform filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.New())
}

// newRootCmd builds the root command against the given filesystem,
// which tests replace with a recording fake.
func newRootCmd(fs types.FS) *cobra.Command {
	var (
		verbosity int
		linkPath  string
		target    string
		soft      bool
		hard      bool
		symbolic  bool
		junction  bool
		colorMode string
		cfgFile   string
	)

	rootCmd := &cobra.Command{
		Use:     "mklnk",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if verbosity == 0 && cfg.Logging.Verbosity > 0 {
				logging.SetupLogger(cfg.Logging.Verbosity)
			}

			if colorMode == "" {
				colorMode = cfg.Output.Color
			}
			format, err := ui.ParseFormat(colorMode)
			if err != nil {
				return err
			}

			// Link-type validation happens before any filesystem call.
			linkType, err := types.ParseLinkType(soft, hard, symbolic, junction)
			if err != nil {
				return err
			}

			req := types.LinkRequest{Link: linkPath, Target: target}
			if err := req.Validate(); err != nil {
				return err
			}

			log.Debug().
				Str("type", linkType.Name()).
				Str("link", req.Link).
				Str("target", req.Target).
				Msg("Creating link")

			creator := link.NewCreator(fs)
			if err := creator.Create(linkType, req); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				ui.RenderSuccess(format.Resolve(os.Stdout), linkType, req))
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", MsgFlagConfig)

	rootCmd.Flags().StringVarP(&linkPath, "link", "t", "", MsgFlagLink)
	rootCmd.Flags().StringVarP(&target, "target", "o", "", MsgFlagTarget)
	rootCmd.Flags().BoolVarP(&soft, "soft", "s", false, MsgFlagSoft)
	rootCmd.Flags().BoolVar(&hard, "hard", false, MsgFlagHard)
	rootCmd.Flags().BoolVarP(&symbolic, "symbolic", "d", false, MsgFlagSymbolic)
	rootCmd.Flags().BoolVarP(&junction, "junction", "j", false, MsgFlagJunction)

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig loads either the explicitly named file or the default
// lookup chain.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mklnk version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
