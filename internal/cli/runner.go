package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/idilsaglam/grocery/internal/config"
	"github.com/idilsaglam/grocery/internal/groceries"
	"github.com/idilsaglam/grocery/internal/logger"
	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/store/session"
	"github.com/idilsaglam/grocery/internal/tui"
	"github.com/idilsaglam/grocery/internal/ui"
	"github.com/idilsaglam/grocery/internal/view"
)

const (
	minQuantity = 1
	maxQuantity = 10
)

// Options carry what every subcommand needs.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer

	// runUI replaces the interactive program in tests.
	runUI func(tui.Model) error
}

type runner struct {
	cfg    *config.Config
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
	store  *groceries.Store
	sorter *view.Sorter
	runUI  func(tui.Model) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if len(args) == 0 {
		PrintHelp(opt.Stdout)
		return 2
	}
	cmd, a := args[0], args[1:]
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		PrintHelp(opt.Stdout)
		return 0
	}

	r := newRunner(opt)
	switch cmd {
	case "add":
		return r.doAdd(a)
	case "ls":
		return r.doList(a)
	case "check":
		id, code := r.idArg("check", a)
		if code != 0 {
			return code
		}
		return r.doToggle(id)
	case "rm":
		id, code := r.idArg("rm", a)
		if code != 0 {
			return code
		}
		return r.doRemove(id)
	case "clear":
		return r.doClear()
	case "stats":
		fmt.Fprintln(r.out, view.Summarize(r.store.Items()))
		return 0
	case "ui":
		return r.doUI()
	}

	ui.Fail(r.errOut, "unknown subcommand: "+cmd)
	fmt.Fprintln(r.errOut)
	PrintHelp(r.errOut)
	return 2
}

func newRunner(opt Options) *runner {
	cfg := opt.Config
	log := opt.Logger
	if log == nil {
		log = logger.Discard()
	}

	var kv session.KV
	switch cfg.Storage.Backend {
	case "memory":
		kv = session.NewMemoryKV()
	default:
		kv = session.NewFileKV(session.Dir(cfg.Storage.Dir, cfg.Session.ID))
	}

	tag, err := language.Parse(cfg.UI.Locale)
	if err != nil {
		log.Warn("bad locale, using English", "locale", cfg.UI.Locale, "err", err)
		tag = language.English
	}

	runUI := opt.runUI
	if runUI == nil {
		runUI = func(m tui.Model) error { return tui.Run(m) }
	}
	return &runner{
		cfg:    cfg,
		log:    log,
		out:    opt.Stdout,
		errOut: opt.Stderr,
		store:  groceries.New(session.NewAdapter(kv, log), groceries.WithLogger(log)),
		sorter: view.NewSorter(tag),
		runUI:  runUI,
	}
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `grocery - a grocery list for this terminal session

Usage:
  grocery [-config file] [-theme classic|neon|mono] <subcommand> [args]

Subcommands:
  add [-q N] <name...>   Add an item, quantity 1-10 (default 1)
  ls [-sort mode]        List items; mode is input, name or checked
  check <id>             Toggle purchased for the item with that id
  rm <id>                Remove the item with that id
  clear                  Remove every item
  stats                  Print the progress summary
  ui                     Interactive list

The list lives as long as the shell session (GROCERY_SESSION_ID overrides).

Examples:
  grocery add -q 5 Rice
  grocery ls -sort name
  grocery check 1700000000000
  grocery ui
`)
}

// -------------- subcommand impls ----------------

func (r *runner) doAdd(args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	qty := fs.Int("q", minQuantity, "quantity (1-10)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		ui.Fail(r.errOut, "usage: grocery add [-q N] <name...>")
		return 2
	}
	if *qty < minQuantity || *qty > maxQuantity {
		ui.Fail(r.errOut, fmt.Sprintf("add: quantity must be between %d and %d, got %d", minQuantity, maxQuantity, *qty))
		return 2
	}

	it, err := r.store.Add(strings.Join(fs.Args(), " "), *qty)
	if errors.Is(err, model.ErrEmptyName) {
		ui.Warn(r.errOut, "Please fill in the item name")
		return 2
	}
	if err != nil {
		ui.Fail(r.errOut, err.Error())
		return 1
	}
	ui.OK(r.out, fmt.Sprintf("added %d %s (id %d)", it.Quantity, it.Name, it.ID))
	return 0
}

func (r *runner) doList(args []string) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	sortName := fs.String("sort", r.cfg.UI.Sort, "input, name or checked")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	mode, err := view.ParseSortMode(*sortName)
	if err != nil {
		ui.Fail(r.errOut, "ls: "+err.Error())
		return 2
	}

	t := ui.Current()
	items := r.store.Items()
	s := view.Summarize(items)

	lines := []string{
		t.Title.Render("My Grocery Notes 📝"),
		t.Muted.Render(ui.ProgressBar(s.Percentage, 28)),
		"",
	}
	lines = append(lines, rowLines(r.sorter.Apply(items, mode))...)
	lines = append(lines,
		"",
		t.Accent.Render(mode.Label()),
		s.String(),
	)
	fmt.Fprintln(r.out, ui.Panel(lines...))
	return 0
}

func (r *runner) doToggle(id int64) int {
	found := r.has(id)
	if err := r.store.Toggle(id); err != nil {
		ui.Fail(r.errOut, err.Error())
		return 1
	}
	if found {
		ui.OK(r.out, "toggled")
	}
	return 0
}

func (r *runner) doRemove(id int64) int {
	found := r.has(id)
	if err := r.store.Delete(id); err != nil {
		ui.Fail(r.errOut, err.Error())
		return 1
	}
	if found {
		ui.OK(r.out, "removed")
	}
	return 0
}

func (r *runner) doClear() int {
	if err := r.store.ClearAll(); err != nil {
		ui.Fail(r.errOut, err.Error())
		return 1
	}
	ui.OK(r.out, "cleared")
	return 0
}

func (r *runner) doUI() int {
	mode, err := view.ParseSortMode(r.cfg.UI.Sort)
	if err != nil {
		mode = view.SortInput
	}
	if err := r.runUI(tui.New(r.store, r.sorter, mode)); err != nil {
		ui.Fail(r.errOut, "ui: "+err.Error())
		return 1
	}
	return 0
}

// -------------- helpers --------------

func (r *runner) idArg(cmd string, a []string) (int64, int) {
	if len(a) != 1 {
		ui.Fail(r.errOut, "usage: grocery "+cmd+" <id>")
		return 0, 2
	}
	id, err := strconv.ParseInt(a[0], 10, 64)
	if err != nil {
		ui.Fail(r.errOut, cmd+": not a number: "+a[0])
		ui.Hint(r.errOut, "Hint: run `grocery ls` to see item ids")
		return 0, 2
	}
	return id, 0
}

func (r *runner) has(id int64) bool {
	for _, it := range r.store.Items() {
		if it.ID == id {
			return true
		}
	}
	return false
}

func rowLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.Current().Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		name := it.Name
		if rs := []rune(name); len(rs) > 80 {
			name = string(rs[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s",
			ui.Row(it.Quantity, name, it.Checked),
			ui.Current().Muted.Render(fmt.Sprintf("#%d", it.ID))))
	}
	return out
}
