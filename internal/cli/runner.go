package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/bind"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/reducer"
	"github.com/Makepad-fr/tada/internal/script"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options carry the loaded configuration and logger into subcommands.
type Options struct {
	Config *config.Config
	Logger *log.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	if opt.Config == nil {
		opt.Config = config.Default()
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	ui.SetColorMode(opt.Config.Color)
	ui.SetTheme(opt.Config.Theme)

	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "run":
		route, rest, code := parseRoute("run", a)
		if code != 0 {
			return code
		}
		if len(rest) != 1 {
			ui.Fail("usage: todo run [-route all|open|done] <script>")
			return 2
		}
		return doRun(rest[0], route, opt)

	case "check":
		if len(a) != 1 {
			ui.Fail("usage: todo check <script>")
			return 2
		}
		return doCheck(a[0], opt)

	case "ui":
		route, rest, code := parseRoute("ui", a)
		if code != 0 {
			return code
		}
		if len(rest) > 1 {
			ui.Fail("usage: todo ui [-route all|open|done] [script]")
			return 2
		}
		return doUI(rest, route, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Stdout, `todo - a tiny unidirectional-data-flow todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ui [-route f] [script]     Interactive session (optionally seeded from a script)
  run [-route f] <script>    Replay an action script and print the visible todos
  check <script>             Validate an action script
  help                       Show this help

Scripts are JSON or YAML lists of actions:
  - {type: ADD TODO, text: buy milk}
  - {type: TOGGLE TODO, id: 1}
  - {type: SET VISIBILITY FILTER, filter: SHOW DONE}

-route fixes the visible filter (all, open, done) regardless of the state.

Flags:
  --config <file>     TOML config (default: tada.toml or .tada.toml)
  --filter <f>        initial visibility filter
  --normalized        keep todos in {byId, allIds} state
  --group             group output by open/done
  --theme <name>      classic, neon or mono
  --color <mode>      auto, always or never
  --log-level <lvl>   debug, info, warn or error
  --first-id <n>      first id handed to new todos

Examples:
  todo run actions.yaml
  todo --normalized run -route done actions.json
  todo ui
`)
}

// parseRoute reads the per-subcommand -route flag. A non-zero code means
// the caller should return it.
func parseRoute(name string, args []string) (model.Filter, []string, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	route := fs.String("route", "", "fixed visibility filter")
	if err := fs.Parse(args); err != nil {
		ui.Fail(name + ": " + err.Error())
		return "", nil, 2
	}
	if *route == "" {
		return "", fs.Args(), 0
	}
	f, err := model.ParseFilter(*route)
	if err != nil {
		ui.Fail(name + ": " + err.Error())
		return "", nil, 2
	}
	return f, fs.Args(), 0
}

// -------------- subcommand impls ----------------

func loadScript(path string, ids action.IDSource) ([]action.Action, int) {
	actions, err := script.Load(path, ids)
	if err == nil {
		return actions, 0
	}
	var ve *script.ValidationError
	if errors.As(err, &ve) {
		ui.Fail(fmt.Sprintf("%s: %d problem(s)", path, len(ve.Issues)))
		for _, is := range ve.Issues {
			fmt.Fprintln(ui.Stderr, ui.C(ui.Current().Muted, "  "+is.String()))
		}
		return nil, 1
	}
	ui.Fail("load: " + err.Error())
	return nil, 1
}

func doCheck(path string, opt Options) int {
	actions, code := loadScript(path, action.NewSequence(opt.Config.FirstID))
	if code != 0 {
		return code
	}
	ui.OK(fmt.Sprintf("%s: %d action(s)", path, len(actions)))
	return 0
}

func doRun(path string, route model.Filter, opt Options) int {
	cfg := opt.Config
	actions, code := loadScript(path, action.NewSequence(cfg.FirstID))
	if code != 0 {
		return code
	}
	opt.Logger.Debug("replaying script", "path", path, "actions", len(actions), "normalized", cfg.Normalized)

	mw := store.WithMiddleware(store.LogActions(opt.Logger))
	var (
		props bind.TodoListProps
		links []bind.FilterLinkProps
	)
	if cfg.Normalized {
		initial := state.InitialNormalized()
		initial.VisibilityFilter = cfg.VisibilityFilter
		s := store.New(reducer.RootNormalized, initial, mw)
		mapState := bind.VisibleTodoListNormalized
		if route != "" {
			mapState = bind.VisibleTodoListNormalizedFor(route)
		}
		props = replay(s, actions, mapState)
		links = bind.FilterLinksNormalized(s.GetState())
	} else {
		initial := state.Initial()
		initial.VisibilityFilter = cfg.VisibilityFilter
		s := store.New(reducer.Root, initial, mw)
		mapState := bind.VisibleTodoList
		if route != "" {
			mapState = bind.VisibleTodoListFor(route)
		}
		props = replay(s, actions, mapState)
		links = bind.FilterLinks(s.GetState())
	}
	if route != "" {
		links = routeLinks(route)
	}

	ui.Panel(renderList(props, links, cfg.Group))
	return 0
}

// replay dispatches every action into s and returns the props a connected
// list holds at the end.
func replay[S any](s *store.Store[S], actions []action.Action, mapState func(S) bind.TodoListProps) bind.TodoListProps {
	list := bind.Connect(s, mapState, bind.NoCallbacks)
	defer list.Close()
	for _, a := range actions {
		s.Dispatch(a)
	}
	return list.Props()
}

// nextFree returns a sequence that cannot repeat an id added by actions.
func nextFree(ids *action.Sequence, actions []action.Action) *action.Sequence {
	next := ids.Peek()
	for _, a := range actions {
		if add, ok := a.(action.AddTodo); ok && add.ID >= next {
			next = add.ID + 1
		}
	}
	return action.NewSequence(next)
}

func doUI(rest []string, route model.Filter, opt Options) int {
	cfg := opt.Config
	ids := action.NewSequence(cfg.FirstID)

	var seed []action.Action
	if len(rest) == 1 {
		var code int
		if seed, code = loadScript(rest[0], ids); code != 0 {
			return code
		}
		ids = nextFree(ids, seed)
	}
	if cfg.Normalized {
		opt.Logger.Warn("the interactive session always uses the flat state; ignoring --normalized")
	}

	initial := state.Initial()
	initial.VisibilityFilter = cfg.VisibilityFilter
	s := store.New(reducer.Root, initial, store.WithMiddleware(store.LogActions(opt.Logger)))
	for _, a := range seed {
		s.Dispatch(a)
	}

	if err := tui.Run(s, tui.Options{IDs: ids, Filter: route, Logger: opt.Logger}); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}
