package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-jobform/internal/config"
	"github.com/goliatone/go-jobform/pkg/render"
	"github.com/goliatone/go-jobform/pkg/renderers/vanilla"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

var (
	configPath string
	envFile    string

	cfg    config.Config
	logger = log.New(os.Stderr, "jobform: ", log.LstdFlags)
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "jobform",
		Short:        "Multi-step job application form",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(config.Options{Path: configPath, EnvFile: envFile})
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file (default .env when present)")

	root.AddCommand(tuiCmd(), serveCmd(), renderCmd())
	return root
}

func newWizard() (*wizard.Wizard, error) {
	sink, err := cfg.Sink.BuildSink(logger)
	if err != nil {
		return nil, err
	}
	return wizard.New(wizard.WithSink(sink), wizard.WithLogger(logger)), nil
}

func renderOptions() (render.RenderOptions, error) {
	themeCfg, err := cfg.Theme.RendererConfig()
	if err != nil {
		return render.RenderOptions{}, err
	}
	return render.RenderOptions{
		Theme:         themeCfg,
		TermsHTML:     cfg.TermsHTML,
		TermsMarkdown: cfg.TermsMarkdown,
	}, nil
}

func newHTMLRenderer() (*vanilla.Renderer, error) {
	return vanilla.New(vanilla.WithTitle(cfg.Title))
}
