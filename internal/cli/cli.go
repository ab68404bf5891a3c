package cli

import (
	"fmt"
	"time"

	"github.com/boostgo/errorx"
	"github.com/jessevdk/go-flags"
)

const (
	Name = "dircmp"

	DefaultLeft  = "main"
	DefaultRight = "explore"
)

var ErrPositionalArgs = errorx.New("dircmp.cli.positional_args")

// Option defines command line options.
type Option struct {
	Out          string        `short:"o" long:"out" description:"directory diff artifacts are written to" default:"."`
	Timeout      time.Duration `short:"t" long:"timeout" description:"per entry comparison timeout, 0 disables it" default:"30s"`
	Jobs         int           `short:"j" long:"jobs" description:"number of entries compared at once" default:"1"`
	Tool         string        `long:"tool" description:"external diff program used instead of the built-in line differ"`
	Context      int           `short:"U" long:"context" description:"unchanged lines around each hunk of the built-in differ" default:"3"`
	IgnoreHidden bool          `long:"ignore-hidden" description:"skip entries whose name starts with a dot"`
	Include      []string      `short:"i" long:"include" description:"glob an entry name must match, may be repeated"`
	Exclude      []string      `short:"x" long:"exclude" description:"glob an entry name must not match, may be repeated"`
	NoLock       bool          `long:"no-lock" description:"do not lock the artifact directory"`
	Debug        bool          `short:"d" long:"debug" description:"debug mode"`
	LogLevel     string        `long:"log-level" description:"log level" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error"`

	Left  string
	Right string
}

// Parse returns parsed command-line flags in Option struct.
// Positional roots default to ./main and ./explore.
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = Name
	parser.Usage = "[OPTIONS] [LEFT RIGHT]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	switch len(rest) {
	case 0:
		opt.Left, opt.Right = DefaultLeft, DefaultRight
	case 2:
		opt.Left, opt.Right = rest[0], rest[1]
	default:
		return nil, ErrPositionalArgs.
			SetError(fmt.Errorf("expected no directories or LEFT and RIGHT, got %d arguments", len(rest))).
			SetData(struct {
				Args []string `json:"args"`
			}{
				Args: rest,
			})
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
