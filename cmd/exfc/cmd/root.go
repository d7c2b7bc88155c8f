package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
	exfclog "github.com/msto63/exfc/foundation/core/log"
	"github.com/msto63/exfc/internal/catalog"
	"github.com/msto63/exfc/internal/render"
	"github.com/msto63/exfc/pkg/core/config"
	"github.com/msto63/exfc/pkg/core/logging"
	"github.com/msto63/exfc/pkg/core/version"
	"github.com/msto63/exfc/pkg/exception"
)

// rootOptions holds global flags and the state built from them
type rootOptions struct {
	cfgFile     string
	catalogFile string
	verbose     bool
	plain       bool

	cfg           *config.Config
	logger        *exfclog.Logger
	correlationID string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "exfc",
		Short: "exfc - fixed-capacity exception registry",
		Long: `exfc manages a fixed-capacity registry of named, identified exceptions.

Every invocation builds one registry from the configuration: the builtin
exceptions (unless disabled) followed by the records of the catalog file.
Changes made by add and remove last for the invocation only; use run to
apply a sequence of operations to one registry.

Exit status of throw and of fatal errors is the id of the exception.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default: $EXFC_CONFIG or ./configs/exfc.toml)")
	rootCmd.PersistentFlags().StringVar(&o.catalogFile, "catalog", "", "catalog file (toml or yaml) overriding the configured one")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&o.plain, "plain", false, "plain tab-separated output without styling")

	rootCmd.AddCommand(
		newListCmd(o),
		newFindCmd(o),
		newAddCmd(o),
		newRemoveCmd(o),
		newCompactCmd(o),
		newThrowCmd(o),
		newRunCmd(o),
		newWatchCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI. Errors are returned for the top-level handler.
func Execute() error {
	return newRootCmd().Execute()
}

// setup loads the configuration and logger
func (o *rootOptions) setup(stderr io.Writer) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if o.catalogFile != "" {
		cfg.Catalog.Path = o.catalogFile
	}
	o.cfg = cfg

	o.correlationID = uuid.NewString()
	logCfg := logging.FromGeneral("exfc", cfg.General)
	logCfg.Output = stderr
	logCfg.CorrelationID = o.correlationID
	if o.verbose {
		logCfg.Level = exfclog.LevelDebug.String()
	}
	o.logger = logging.NewLogger(logCfg)

	o.logger.Debug("configuration loaded", logging.Fields(
		"environment", cfg.General.Environment,
		"capacity", cfg.Registry.Capacity,
		"strategy", cfg.Registry.Strategy,
		"catalog", cfg.Catalog.Path,
	))
	return nil
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgFile != "" {
		return config.Load(o.cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		if os.Getenv(config.EnvConfigPath) == "" && exfcerror.HasCode(err, exfcerror.CodeMissingConfig) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// newRegistry builds the registry of this invocation
func (o *rootOptions) newRegistry() (*exception.Registry, error) {
	excCfg, err := o.cfg.Registry.ExceptionConfig()
	if err != nil {
		return nil, err
	}
	reg := exception.New(excCfg)

	if o.cfg.Registry.SeedBuiltins {
		if err := reg.RegisterBuiltins(); err != nil {
			return nil, err
		}
	}

	if o.cfg.Catalog.Path != "" {
		if _, err := o.loadCatalog(reg, o.cfg.Catalog.Path); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (o *rootOptions) loadCatalog(reg *exception.Registry, path string) (catalog.Result, error) {
	return catalog.NewLoader(reg, o.logger).
		SkipDuplicates(o.cfg.Catalog.SkipDuplicates).
		LoadFile(path)
}

func (o *rootOptions) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), o.plain)
}

// lookupFlags are shared by commands addressing a record by name and/or id
type lookupFlags struct {
	id int
}

func (l *lookupFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&l.id, "id", 0, "record id")
}

func (l *lookupFlags) resolve(cmd *cobra.Command, args []string) (name string, id *int, err error) {
	if len(args) > 0 {
		name = args[0]
	}
	if cmd.Flags().Changed("id") {
		v := l.id
		id = &v
	}
	if name == "" && id == nil {
		return "", nil, errors.New("a name argument or --id is required")
	}
	return name, id, nil
}

// lookup finds a record by name, id or both
func lookup(reg *exception.Registry, name string, id *int) (int, exception.Record, error) {
	var (
		index int
		err   error
	)
	switch {
	case id != nil && name != "":
		index, err = reg.FindByRecord(exception.Record{Name: name, ID: *id})
	case id != nil:
		index, err = reg.FindByID(*id)
	default:
		index, err = reg.FindByName(name)
	}
	if err != nil {
		return -1, exception.Record{}, err
	}

	rec, err := reg.At(index)
	return index, rec, err
}

func describe(name string, id *int) string {
	switch {
	case id != nil && name != "":
		return fmt.Sprintf("%s (id %d)", name, *id)
	case id != nil:
		return fmt.Sprintf("id %d", *id)
	default:
		return name
	}
}

func exceptionFields(rec exception.Record) exfclog.Fields {
	return exfclog.Fields{
		"exception": rec.Name,
		"id":        rec.ID,
	}
}
