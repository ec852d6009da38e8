package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lmcl/cli/cmd"
	"github.com/ardnew/lmcl/log"
	"github.com/ardnew/lmcl/pkg"
)

// CLI is the top-level command-line interface for lmcl.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path    []string         `help:"Directories searched for source files (also ${pathEnv})" placeholder:"DIR" short:"I" type:"path"`
	Version kong.VersionFlag `help:"Print version and exit"                                                   short:"V"`

	Build cmd.Build `cmd:"" default:"withargs" help:"Translate <name>.lmcl into <name>.html"`
	Dump  cmd.Dump  `cmd:""                    help:"List the statements of a source file"`
	Watch cmd.Watch `cmd:""                    help:"Rebuild a source file whenever it changes"`
	Repl  cmd.Repl  `cmd:""                    help:"Translate statements interactively"`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the lmcl CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, nil, args...)
}

// run is [Run] with the kong options used by tests appended.
func run(
	ctx context.Context,
	exit func(code int),
	extra []kong.Option,
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	yamlPath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		cmd.ConfigIdentifier: yamlPath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            fmt.Sprintf("%s %s", pkg.Name, pkg.Version),
		"pathEnv":            pkg.PathEnv,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	options := []kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve(ctx), yamlPath),
		vars,
	}

	parser, err := kong.New(&cli, append(options, extra...)...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	dirs := searchPath(cli.Path)

	log.TraceContext(ctx, "search path", slog.Any("dirs", dirs))

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx, dirs)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
