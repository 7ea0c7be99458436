package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-formtree/internal/cli"
	"github.com/goliatone/go-formtree/internal/config"
	"github.com/goliatone/go-formtree/internal/logging"
)

// flagConfigKeys maps persistent flags onto config keys understood by
// config.Config.Apply.
var flagConfigKeys = map[string][]string{
	"source":         {"source"},
	"suffix":         {"suffixes"},
	"presets":        {"presets"},
	"http-timeout":   {"httpTimeout"},
	"root":           {"keys", "root"},
	"omit-root":      {"keys", "omitRoot"},
	"separator":      {"keys", "separator"},
	"children-key":   {"keys", "childrenKey"},
	"prototype-key":  {"keys", "prototypeKey"},
	"catalog-dir":    {"catalog", "dir"},
	"domain":         {"catalog", "domain"},
	"locale":         {"catalog", "locale"},
	"default-locale": {"catalog", "defaultLocale"},
	"sanitize":       {"catalog", "sanitize"},
}

func newRootCmd() *cobra.Command {
	session := &cli.Session{}

	root := &cobra.Command{
		Use:           "formtree-cli",
		Short:         "Derive translation keys for OpenAPI request forms",
		Long:          `formtree-cli builds the field tree of an OpenAPI operation's request body and renders translation keys such as form.createPet.children.owner.children.email.label.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupSession(cmd, session)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", config.FileName, "Project configuration file")
	flags.Bool("debug", false, "Enable debug logging")
	flags.StringP("source", "s", "", "OpenAPI document path or URL")
	flags.StringSlice("suffix", nil, "Attributes to produce keys for (label, help, placeholder, description)")
	flags.String("presets", "", "Preset transformer document (YAML or JSON)")
	flags.Duration("http-timeout", 0, "Enable URL sources with this fetch timeout")
	flags.String("root", "", "Leading key segment")
	flags.Bool("omit-root", false, "Drop the leading key segment")
	flags.String("separator", "", "Key segment separator")
	flags.String("children-key", "", "Segment inserted after parents with children")
	flags.String("prototype-key", "", "Segment used for collection items")
	flags.String("catalog-dir", "", "Directory holding translation files")
	flags.String("domain", "", "Translation domain")
	flags.StringP("locale", "l", "", "Target locale")
	flags.String("default-locale", "", "Fallback locale")
	flags.Bool("sanitize", false, "Strip HTML from loaded translations")

	root.AddCommand(
		newOperationsCmd(session),
		newKeysCmd(session),
		newExtractCmd(session),
		newLocalizeCmd(session),
		newLintCmd(session),
	)
	return root
}

func setupSession(cmd *cobra.Command, session *cli.Session) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, !flags.Changed("config"))
	if err != nil {
		return err
	}

	overrides := map[string]any{}
	flags.Visit(func(f *pflag.Flag) {
		target, ok := flagConfigKeys[f.Name]
		if !ok {
			return
		}
		value := any(f.Value.String())
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			value = sv.GetSlice()
		}
		setNested(overrides, target, value)
	})
	if cfg, err = cfg.Apply(overrides); err != nil {
		return err
	}

	debug, _ := flags.GetBool("debug")
	*session = *cli.NewSession(cfg, logging.New(logging.Level(debug)))
	session.Stdout = cmd.OutOrStdout()
	session.Logger.Debug("cli: configuration resolved", "config", path, "source", cfg.Source, "locale", cfg.Catalog.Locale)
	return nil
}

func setNested(dst map[string]any, path []string, value any) {
	for _, key := range path[:len(path)-1] {
		next, ok := dst[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			dst[key] = next
		}
		dst = next
	}
	dst[path[len(path)-1]] = value
}
