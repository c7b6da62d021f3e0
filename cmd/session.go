package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/percentage"
	"github.com/etnz/percentage/renderer"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

type sessionCmd struct {
	script string
	base   string
	show   bool
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "accumulate percentages of a base value interactively" }
func (*sessionCmd) Usage() string {
	return `pcalc session [-base <value>] [-f <script>] [-show]

  Starts a session reading one command per line, from stdin or from a script
  file. The base value is locked by the first successful 'add' until 'clear'.
  Once the entries reach 100%, 'add' is refused until entries are removed.

Commands:
` + sessionHelp + `
Usage Examples:
$ printf 'base 3760\nadd 1200 940\nshow\n' | pcalc session

`
}

const sessionHelp = `  base <value>     set the base value (100%), while it is not locked
  add <value>...   add partial values
  rm <n|id>        remove an entry by position or id prefix
  copy <n|id>      copy an entry value and mark it as copied
  clear            remove all entries and unlock the base value
  show [json]      print the entries, totals and remaining value
  help             print this help
  quit             end the session
`

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.script, "f", "", "Read commands from this file instead of stdin.")
	f.StringVar(&c.base, "base", "", "Initial base value.")
	f.BoolVar(&c.show, "show", false, "Print the entries when the session ends.")
}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if c.script != "" {
		file, err := os.Open(c.script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open script: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in, interactive = file, false
	}

	s := newSession(os.Stdout, *currency)
	if c.base != "" {
		s.exec("base " + c.base)
	}
	if err := s.run(in, interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading commands: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.show {
		s.exec("show")
	}
	return subcommands.ExitSuccess
}

// session is the state of one user working on one ledger.
type session struct {
	ledger   *percentage.Ledger
	baseText string // base field content, it can be changed until the ledger is locked
	currency string
	out      io.Writer
	markdown func(io.Writer, string)
}

func newSession(out io.Writer, currency string) *session {
	return &session{
		ledger:   percentage.NewLedger(),
		currency: currency,
		out:      out,
		markdown: printMarkdown,
	}
}

// run executes every line from r until the end of input or a quit command.
func (s *session) run(r io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := s.exec(scanner.Text()); quit {
			return nil
		}
	}
}

// exec runs a single command line, and reports whether the session is over.
// Errors are printed and never end the session.
func (s *session) exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	logger.Debug().Str("command", name).Strs("args", args).Msg("session command")

	var err error
	switch name {
	case "base":
		err = s.setBase(args)
	case "add":
		err = s.add(args)
	case "rm", "remove", "del":
		err = s.remove(args)
	case "copy":
		err = s.copy(args)
	case "clear":
		s.ledger.Reset()
		s.baseText = ""
		fmt.Fprintln(s.out, "Cleared.")
	case "show":
		err = s.show(args)
	case "help":
		fmt.Fprint(s.out, sessionHelp)
	case "quit", "exit":
		return true
	default:
		err = fmt.Errorf("unknown command %q, try 'help'", name)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

func (s *session) options() renderer.Options {
	return renderer.Options{Currency: s.currency, Base: s.baseText}
}

func (s *session) show(args []string) error {
	switch {
	case len(args) == 0:
		s.markdown(s.out, renderer.LedgerMarkdown(s.ledger, s.options()))
		return nil
	case len(args) == 1 && args[0] == "json":
		data, err := json.MarshalIndent(s.ledger, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding ledger: %w", err)
		}
		fmt.Fprintf(s.out, "%s\n", data)
		return nil
	default:
		return errors.New("usage: show [json]")
	}
}

func (s *session) setBase(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: base <value>")
	}
	if s.ledger.Locked() {
		return errors.New("the base value is locked, use 'clear' to start over")
	}
	v, err := percentage.ParseAmount(args[0])
	if err != nil {
		return err
	}
	s.baseText = args[0]
	fmt.Fprintf(s.out, "Base: %s\n", renderer.FormatValue(v, s.currency))
	return nil
}

func (s *session) add(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: add <value>...")
	}
	for _, arg := range args {
		if s.ledger.IsFull() {
			return errors.New(renderer.LimitReachedMessage)
		}
		e, err := s.ledger.Add(s.baseText, arg)
		if err != nil {
			return errors.New(errorMessage(err))
		}
		logger.Debug().Str("id", e.ID).Str("value", e.Value.String()).Str("percentage", e.Percentage.Decimal().String()).Msg("entry added")
		fmt.Fprintf(s.out, "#%d %s -> %s%% (sum %s)\n",
			s.ledger.Len(),
			renderer.FormatValue(e.Value, s.currency),
			renderer.FormatPercent(e.Percentage),
			renderer.FormatAccumulated(s.ledger.TotalPercentage()))
		if s.ledger.IsFull() {
			fmt.Fprintln(s.out, renderer.LimitReachedMessage)
		}
	}
	fmt.Fprintln(s.out, renderer.RemainingLine(s.ledger, s.options()))
	return nil
}

// lookup finds an entry by its 1-based position or a prefix of its id.
func (s *session) lookup(args []string) (n int, e percentage.Entry, err error) {
	if len(args) != 1 {
		return 0, e, errors.New("an entry position or id is required")
	}
	entries := s.ledger.Entries()
	if i, err := strconv.Atoi(args[0]); err == nil {
		if i < 1 || i > len(entries) {
			return 0, e, fmt.Errorf("no entry #%d", i)
		}
		return i, entries[i-1], nil
	}
	found := -1
	for i, entry := range entries {
		if strings.HasPrefix(entry.ID, args[0]) {
			if found >= 0 {
				return 0, e, fmt.Errorf("id %q is ambiguous", args[0])
			}
			found = i
		}
	}
	if found < 0 {
		return 0, e, fmt.Errorf("no entry with id %q", args[0])
	}
	return found + 1, entries[found], nil
}

func (s *session) remove(args []string) error {
	n, e, err := s.lookup(args)
	if err != nil {
		return err
	}
	s.ledger.RemoveEntry(e.ID)
	fmt.Fprintf(s.out, "Removed #%d %s, total %s\n",
		n, renderer.FormatValue(e.Value, s.currency), renderer.FormatAccumulated(s.ledger.TotalPercentage()))
	return nil
}

func (s *session) copy(args []string) error {
	_, e, err := s.lookup(args)
	if err != nil {
		return err
	}
	v, ok := s.ledger.AcknowledgeEntry(e.ID)
	if !ok {
		return fmt.Errorf("no entry with id %q", e.ID)
	}
	fmt.Fprintf(s.out, "Value %s copied! (%s%%)\n", renderer.FormatValue(v, s.currency), renderer.FormatPercent(e.Percentage))
	return nil
}
