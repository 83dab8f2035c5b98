package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/pennywise/internal/category"
	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/ledger"
	"go.uber.org/multierr"
)

// Session commands.
const (
	CmdAdd            = "add"
	CmdView           = "view"
	CmdDelete         = "delete"
	CmdViewCategories = "view categories"
	CmdFind           = "find"
	CmdExit           = "exit"
)

const cancelDeletion = -1

// Session runs the interactive command loop over a single ledger. It handles
// one command at a time; nothing else touches the ledger while it runs.
type Session struct {
	reader     *LineReader
	out        io.Writer
	ledger     *ledger.Ledger
	categories *category.Tree
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(in io.Reader, out io.Writer, l *ledger.Ledger, categories *category.Tree) *Session {
	return &Session{
		reader:     NewLineReader(in),
		out:        out,
		ledger:     l,
		categories: categories,
	}
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(s.out, FormatPrompt(text))
	return s.reader.ReadLine(ctx)
}

// InitializeBalance asks for the starting amount of money when the balance is
// still zero, repeating until an integer is entered.
func (s *Session) InitializeBalance(ctx context.Context) error {
	if s.ledger.Balance() != 0 {
		return nil
	}

	for {
		line, err := s.prompt(ctx, "How much money do you have?")
		if err != nil {
			return err
		}

		balance, err := strconv.Atoi(line)
		if err != nil {
			s.println(FormatError("Invalid value for money. Try again."))
			continue
		}

		s.ledger.SetBalance(balance)
		return nil
	}
}

// Run reads and executes commands until "exit" or the end of input. Saving is
// left to the caller. A canceled context returns ErrInputCancelled.
func (s *Session) Run(ctx context.Context) error {
	for {
		cmd, err := s.prompt(ctx, "What do you want to do (add / view / delete / view categories / find / exit)?")
		if errors.Is(err, io.EOF) {
			s.println()
			return nil
		}
		if err != nil {
			return err
		}

		slog.Debug("session command", "command", cmd)

		switch strings.ToLower(strings.Join(strings.Fields(cmd), " ")) {
		case CmdAdd:
			err = s.add(ctx)
		case CmdView:
			RenderRecords(s.out, s.ledger.Records(), s.ledger.Balance())
		case CmdDelete:
			err = s.delete(ctx)
		case CmdViewCategories:
			RenderHierarchy(s.out, s.categories)
		case CmdFind:
			err = s.find(ctx)
		case CmdExit:
			return nil
		case "":
			continue
		default:
			s.println(FormatError("Invalid command. Try again."))
		}

		if errors.Is(err, io.EOF) {
			s.println()
			return nil
		}
		if err != nil {
			return err
		}
		s.println()
	}
}

func (s *Session) add(ctx context.Context) error {
	s.println("Add some expense or income records with category, description, and amount (separate by spaces):")
	s.println("cat1 desc1 amt1, cat2 desc2 amt2, cat3 desc3 amt3, ...")

	line, err := s.reader.ReadLine(ctx)
	if err != nil {
		return err
	}

	added, err := s.ledger.Add(s.categories, line)
	for _, entryErr := range multierr.Errors(err) {
		s.reportInvalidEntry(entryErr)
	}

	if len(added) > 0 {
		s.println(FormatSuccess(fmt.Sprintf("Added %d record(s). Now you have %d dollars.", len(added), s.ledger.Balance())))
	}
	return nil
}

func (s *Session) reportInvalidEntry(err error) {
	var entryErr *ledger.EntryError
	entry := ""
	if errors.As(err, &entryErr) {
		entry = entryErr.Entry
	}

	switch {
	case errors.Is(err, common.ErrUnknownCategory):
		name := entry
		if fields := strings.Fields(entry); len(fields) > 0 {
			name = fields[0]
		}
		s.println(FormatWarning(fmt.Sprintf("The specified category '%s' is not in the category list.", name)))
		s.println("You can check the category list by command 'view categories'.")
	case errors.Is(err, common.ErrInvalidAmount):
		s.println(FormatWarning("Invalid format for record: " + entry))
		s.println("Invalid value for money.")
	default:
		s.println(FormatWarning("Invalid format for record: " + entry))
		s.println("The format of a record should be like this: food breakfast -50.")
	}
	s.println(SubtleStyle.Render("Skipping invalid record >>>"))
}

func (s *Session) delete(ctx context.Context) error {
	s.println("Which record do you want to delete?")
	s.println()
	RenderRecords(s.out, s.ledger.Records(), s.ledger.Balance())
	s.println()

	for {
		line, err := s.prompt(ctx, "Please select Id of item you want to delete (Press -1 to cancel deletion):")
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(line)
		if err != nil {
			s.println(FormatError("Invalid format! Fail to delete a record."))
			s.println("Try again.")
			continue
		}
		if id == cancelDeletion {
			s.println("Cancel deletion")
			return nil
		}

		rec, err := s.ledger.Delete(id)
		if errors.Is(err, common.ErrRecordNotFound) {
			s.println(FormatError("Invalid number! No record found with that number."))
			s.println("Try again.")
			continue
		}
		if err != nil {
			return err
		}

		s.println(FormatSuccess(fmt.Sprintf(
			"Record with category '%s', description '%s' and amount %d has been successfully deleted.",
			rec.Category, rec.Description, rec.Amount)))
		return nil
	}
}

func (s *Session) find(ctx context.Context) error {
	name, err := s.prompt(ctx, "Which category do you want to find?")
	if err != nil {
		return err
	}

	result, err := s.ledger.Find(s.categories, name)
	if errors.Is(err, common.ErrUnknownCategory) {
		RenderUnknownCategory(s.out, name)
		return nil
	}
	if err != nil {
		return err
	}

	RenderFind(s.out, result)
	return nil
}
