// tabdeck - terminal tab strip and torrent panel.
// Renders browser-style tabs whose indicators adapt to the available width.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/tabdeck/internal/app"
	"github.com/lazyvibe/tabdeck/internal/model"
	"github.com/lazyvibe/tabdeck/internal/presentation"
	"github.com/lazyvibe/tabdeck/internal/ui"
	"github.com/lazyvibe/tabdeck/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"pkt.systems/psi"
	"pkt.systems/pslog"
)

const (
	appName    = "tabdeck"
	appVersion = "0.1.0"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("tabdeck command failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		configDir string
		demo      bool
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Browser-style tab strip for the terminal",
		Version:       appVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), configDir, demo)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default $XDG_CONFIG_HOME/tabdeck)")
	root.Flags().BoolVar(&demo, "demo", false, "show the demo tabs even when a session file is configured")

	run := &cobra.Command{
		Use:   "run",
		Short: "Run the tab strip (default)",
		RunE:  root.RunE,
	}
	run.Flags().BoolVar(&demo, "demo", false, "show the demo tabs even when a session file is configured")

	root.AddCommand(run, newInspectCmd(&configDir), newConfigCmd(&configDir))
	return root
}

// newConfigCmd prints the effective configuration, optionally writing a default file first.
func newConfigCmd(configDir *string) *cobra.Command {
	var initFile bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, config, err := resolveConfig(*configDir)
			if err != nil {
				return err
			}
			if initFile {
				path := app.ConfigPath(dir)
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists", path)
				}
				if err := app.SaveConfig(dir, app.DefaultConfig()); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				pslog.Ctx(cmd.Context()).Info("config written", "path", path)
			}
			out, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write a default config.yaml if none exists")
	return cmd
}

func resolveConfig(configDir string) (string, *app.Config, error) {
	if configDir == "" {
		dir, err := utils.ConfigDir()
		if err != nil {
			return "", nil, fmt.Errorf("config directory: %w", err)
		}
		configDir = dir
	}
	config, err := app.LoadConfig(configDir)
	if err != nil {
		return "", nil, err
	}
	return configDir, config, nil
}

// runTUI loads the session and runs the program. Logs go to a file so they
// do not tear the alternate screen.
func runTUI(ctx context.Context, configDir string, demo bool) error {
	configDir, config, err := resolveConfig(configDir)
	if err != nil {
		return err
	}

	session := app.DemoSession()
	if config.SessionFile != "" && !demo {
		session, err = app.LoadSession(config.SessionFile)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(configDir, appName+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(logFile),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	logger.Info("tabdeck start", "tabs", len(session.Tabs), "config_dir", configDir)

	p := tea.NewProgram(
		ui.New(ctx, config, session),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover needs motion without a pressed button
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("tabdeck exit")
	return nil
}

// newInspectCmd prints the presentation decision for a single tab as YAML.
func newInspectCmd(configDir *string) *cobra.Command {
	var (
		vm         model.TabViewModel
		breakpoint string
		partition  string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print which indicators a tab would show",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, config, err := resolveConfig(*configDir)
			if err != nil {
				return err
			}
			bp, ok := model.ParseBreakpoint(breakpoint)
			if !ok {
				return fmt.Errorf("unknown breakpoint %q", breakpoint)
			}
			vm.Breakpoint = bp
			if partition != "" {
				vm.Partition = model.PartitionTag(partition)
			}

			decision := presentation.Compute(vm, config.Policy())
			pslog.Ctx(cmd.Context()).Debug("inspect", "breakpoint", string(bp), "partition", vm.Partition.Normalize())

			out, err := yaml.Marshal(decision)
			if err != nil {
				return fmt.Errorf("encode decision: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&breakpoint, "breakpoint", string(model.BreakpointDefault), "width bucket")
	f.BoolVar(&vm.HoverState, "hover", false, "pointer is over the tab")
	f.StringVar(&vm.PinnedLocation, "pinned", "", "pinned location")
	f.BoolVar(&vm.IsActive, "active", false, "tab is selected")
	f.BoolVar(&vm.IsPrivate, "private", false, "private tab")
	f.StringVar(&partition, "partition", "", `session partition, e.g. 3 or "partition-3"`)
	f.BoolVar(&vm.AudioPlaybackActive, "audio", false, "audio is playing")
	f.BoolVar(&vm.AudioMuted, "muted", false, "audio is muted")
	f.StringVar((*string)(&vm.ThemeColor), "theme-color", "", "page theme color")
	f.StringVar(&vm.Location, "location", "https://example.com/", "page location")
	f.StringVar(&vm.PageTitle, "title", "Example Domain", "page title")
	f.StringVar(&vm.Icon, "icon", "", "favicon URL")
	f.BoolVar(&vm.IsLoading, "loading", false, "page is loading")
	return cmd
}
