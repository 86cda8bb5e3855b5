package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/log"
	"github.com/iw2rmb/quill/internal/watch"
	"github.com/iw2rmb/quill/syntax"
)

const localConfigFile = ".quill.yaml"

type rootOptions struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:          "quill [file]",
		Short:        "A small terminal code editor",
		Long:         `quill edits one file in the terminal, coloring keywords from a color configuration and types declared with "class Name" in the file.`,
		Version:      quill.Describe(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
		RunE: opts.run,
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: ./.quill.yaml or ~/.config/quill/config.yaml)")
	cmd.Flags().StringP("syntax", "s", "", "color configuration file (JSON or YAML)")
	cmd.Flags().Bool("debug", false, "write a debug log")
	cmd.Flags().Bool("no-line-numbers", false, "hide the line-number gutter")

	_ = opts.v.BindPFlag("syntax_file", cmd.Flags().Lookup("syntax"))
	_ = opts.v.BindPFlag("log.debug", cmd.Flags().Lookup("debug"))

	cmd.AddCommand(newInitCmd(opts))
	return cmd
}

func (o *rootOptions) initConfig() error {
	config.SetDefaults(o.v)

	switch {
	case o.cfgFile != "":
		o.v.SetConfigFile(o.cfgFile)
	case fileExists(localConfigFile):
		o.v.SetConfigFile(localConfigFile)
	default:
		o.v.AddConfigPath(filepath.Dir(config.DefaultPath()))
		o.v.SetConfigName("config")
		o.v.SetConfigType("yaml")
	}

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.v)
	if err != nil {
		return err
	}
	if off, _ := cmd.Flags().GetBool("no-line-numbers"); off {
		cfg.Editor.LineNumbers = false
	}

	if cfg.Log.Debug {
		cleanup, err := log.Init(cfg.Log.File)
		if err != nil {
			return err
		}
		defer cleanup()
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
	}
	log.Info(log.CatConfig, "starting", "version", quill.Version(), "config", o.v.ConfigFileUsed())

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	ed, err := newEditor(cfg, path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ed.Start(ctx)
	defer ed.Stop()

	var title string
	if path != "" {
		title = filepath.Base(path)
	}
	mcfg := editor.DefaultModelConfig(title)
	mcfg.Context = ctx
	p := tea.NewProgram(newApp(editor.NewModel(ed, mcfg)), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.WatchSyntax && cfg.SyntaxFile != "" {
		stop, err := watchSyntax(cfg.SyntaxFile, p)
		if err != nil {
			log.Warn(log.CatConfig, "color config reload disabled", "error", err)
		} else {
			defer stop()
		}
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newEditor loads path and the color table described by cfg. An empty path
// opens an unnamed document that cannot be saved.
func newEditor(cfg config.Config, path string) (*editor.Editor, error) {
	lines := []string{""}
	var saver editor.LineSaver
	if path != "" {
		store := buffer.FileStore{Path: path}
		loaded, err := store.LoadLines()
		if err != nil {
			return nil, err
		}
		lines = loaded
		saver = store
		log.Info(log.CatIO, "document opened", "path", path, "lines", len(lines))
	}

	return editor.New(buffer.New(lines...), colorTable(cfg), editor.Options{
		ShowLineNumbers: cfg.Editor.LineNumbers,
		DynamicTypes:    cfg.Editor.DynamicTypes,
		ScanInterval:    cfg.ScanInterval,
		TabWidth:        cfg.Editor.TabWidth,
		Saver:           saver,
	}), nil
}

func colorTable(cfg config.Config) *syntax.ColorTable {
	if cfg.SyntaxFile == "" {
		return syntax.BuildColorTable(syntax.DefaultConfig())
	}
	return syntax.LoadColorTable(cfg.SyntaxFile)
}

type sender interface {
	Send(msg tea.Msg)
}

// watchSyntax reloads the color table whenever path changes and hands it to
// the program.
func watchSyntax(path string, p sender) (func(), error) {
	w, err := watch.New(watch.DefaultConfig(path))
	if err != nil {
		return nil, err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return nil, err
	}

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-changes:
				log.Info(log.CatConfig, "color config changed", "path", path)
				p.Send(editor.ColorTableMsg{Table: syntax.LoadColorTable(path)})
			}
		}
	}()

	return func() {
		close(stop)
		_ = w.Stop()
	}, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
