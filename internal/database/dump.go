package database

import (
	"fmt"
	"io"

	"github.com/robsimmons/aspis/internal/term"
)

// Dump writes two labelled sections: "Queue" (FIFO order) and
// "Database" (every fact, printed as a proposition, then every stored
// prefix as "name{ t1/X1, t2/X2, ... }"). Exact whitespace is not a
// compatibility surface; section headers and queue item order are.
func (db Database) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Queue"); err != nil {
		return err
	}
	for _, item := range db.queue.Items() {
		if _, err := fmt.Fprintln(w, "  "+item.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "Database"); err != nil {
		return err
	}
	for _, f := range db.AllFacts() {
		if _, err := fmt.Fprintln(w, "  "+term.FormatProposition(f.Name, f.Args, f.Values)); err != nil {
			return err
		}
	}
	for _, p := range db.AllPrefixes() {
		if _, err := fmt.Fprintf(w, "  %s{ %s }\n", p.Name, term.FormatSubst(p.Subst)); err != nil {
			return err
		}
	}
	return nil
}
