package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/retropad/server/internal/config"
)

const releaseVersion = "1.0.0"

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("RETROPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "retropad-server",
		Short:         "Room coordination server for browser-hosted arcade sessions with phone controllers.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", cfg.Bind, "address to bind to (env: RETROPAD_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env: RETROPAD_PORT)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error (env: RETROPAD_LOG_LEVEL)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json (env: RETROPAD_LOG_FORMAT)")
	fs.StringVar(&cfg.RomsDir, "roms-dir", cfg.RomsDir, "directory scanned for game ROMs (env: RETROPAD_ROMS_DIR)")
	fs.StringVar(&cfg.ImagesDir, "images-dir", cfg.ImagesDir, "directory of game cover images (env: RETROPAD_IMAGES_DIR)")
	fs.StringVar(&cfg.PublicURL, "public-url", cfg.PublicURL, "external base URL used in QR join links (env: RETROPAD_PUBLIC_URL)")
	fs.DurationVar(&cfg.ReapInterval, "reap-interval", cfg.ReapInterval, "how often abandoned rooms are swept (env: RETROPAD_REAP_INTERVAL)")
	fs.DurationVar(&cfg.HostGrace, "host-grace", cfg.HostGrace, "how long a room survives an unreachable host (env: RETROPAD_HOST_GRACE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("retropad-server v{{.Version}}\n")

	return cmd
}

func main() {
	cfg := config.Default()
	cobra.CheckErr(newCmd(cfg).Execute())
}
