package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-shellwords"

	"github.com/julianstephens/habits/internal/constants"
	apperrors "github.com/julianstephens/habits/internal/errors"
	"github.com/julianstephens/habits/internal/logger"
)

// SessionCommands is the grammar of a single session line.
type SessionCommands struct {
	User      UserCmd          `cmd:"" help:"Manage users."`
	Add       HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List      HabitListCmd     `cmd:"" help:"List habits of the active user."`
	Show      HabitShowCmd     `cmd:"" help:"Show a single habit."`
	Rename    HabitRenameCmd   `cmd:"" help:"Rename a habit."`
	Describe  HabitDescribeCmd `cmd:"" help:"Change a habit's description."`
	Status    HabitStatusCmd   `cmd:"" help:"Change a habit's status."`
	FinishAll FinishAllCmd     `cmd:"" help:"Mark every habit as finished."`
	Done      HabitDoneCmd     `cmd:"" help:"Record a completion for a day."`
	History   HabitHistoryCmd  `cmd:"" help:"Show completion history and streak."`
	Delete    HabitDeleteCmd   `cmd:"" help:"Delete a habit."`
	Board     BoardCmd         `cmd:"" help:"Open the interactive habit board."`
	Doctor    DoctorCmd        `cmd:"" help:"Run consistency checks on the session."`
	Debug     DebugCmd         `cmd:"" help:"Debug commands for troubleshooting."`
}

func newSessionParser(ctx *Context) (*kong.Kong, error) {
	return kong.New(&SessionCommands{},
		kong.Name(constants.AppName),
		kong.Description("Session commands. Type 'exit' to leave."),
		kong.Writers(ctx.Out, ctx.Out),
		kong.Exit(func(int) {}),
		kong.NoDefaultHelp(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
}

// Execute parses and runs one session line. Blank lines and '#' comments are
// ignored.
func (c *Context) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	parser, err := newSessionParser(c)
	if err != nil {
		return fmt.Errorf("failed to build command parser: %w", err)
	}

	if args[0] == "help" {
		kctx, err := kong.Trace(parser, nil)
		if err != nil {
			return err
		}
		return kctx.PrintUsage(false)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	logger.Debug("Running session command", "command", kctx.Command())
	return kctx.Run(c)
}

// RunSession reads lines from c.In until EOF or an exit command. With
// stopOnError the first failing line ends the session and its error is
// returned; otherwise errors are printed and reading continues.
func (c *Context) RunSession(interactive, stopOnError bool) error {
	scanner := bufio.NewScanner(c.In)
	lineNo := 0
	for {
		if interactive {
			c.printf("%s", c.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := c.Execute(line); err != nil {
			logger.Warn("Session command failed", "line", lineNo, "error", err)
			if stopOnError {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			c.printf("%s\n", apperrors.Format(err))
		}
	}
	if interactive {
		c.printf("\n")
	}
	return scanner.Err()
}

type ShellCmd struct {
	User string `help:"Register this user and make it active on start."`
}

func (cmd *ShellCmd) Run(ctx *Context) error {
	if cmd.User != "" {
		if _, err := ctx.AddUser(cmd.User); err != nil {
			return err
		}
	}
	if ctx.Prompt == "" {
		ctx.Prompt = constants.DefaultPrompt
	}
	ctx.printf("%s: in-memory habit tracker. Type 'help' for commands.\n", constants.AppName)
	return ctx.RunSession(true, false)
}

type RunCmd struct {
	Script    string `arg:"" help:"Script with one session command per line." type:"existingfile"`
	KeepGoing bool   `help:"Continue after a failing command."`
}

func (cmd *RunCmd) Run(ctx *Context) error {
	f, err := os.Open(cmd.Script)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	ctx.In = f
	return ctx.RunSession(false, !cmd.KeepGoing)
}
