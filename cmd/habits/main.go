package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/habits/internal/cli"
	"github.com/julianstephens/habits/internal/config"
	"github.com/julianstephens/habits/internal/constants"
	apperrors "github.com/julianstephens/habits/internal/errors"
	"github.com/julianstephens/habits/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging (also HABITS_DEBUG)."`
	LogDir  string `help:"Directory for log files (overrides HABITS_LOG_DIR)." type:"path"`

	Shell cli.ShellCmd `cmd:"" help:"Start an interactive session." default:"1"`
	Run   cli.RunCmd   `cmd:"" help:"Run session commands from a script file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("In-memory personal habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.LogDir != "" {
		cfg.LogDir = CLI.LogDir
	}

	if err := logger.Init(logger.Config{
		Debug:      cfg.Debug || CLI.Debug,
		Dir:        cfg.LogDir,
		MaxSizeMB:  cfg.LogMaxSize,
		MaxBackups: cfg.LogBackups,
		MaxAgeDays: cfg.LogMaxAge,
	}); err != nil {
		apperrors.Fatal(err)
	}

	if CLI.Shell.User == "" {
		CLI.Shell.User = cfg.DefaultUser
	}

	appCtx := cli.NewContext()
	appCtx.Prompt = cfg.Prompt

	logger.Debug("Starting", "command", ctx.Command())
	apperrors.Fatal(ctx.Run(appCtx))
}
