package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"

	"pbc/book"
	"pbc/state"
)

// List prints entry ids grouped by category, suitable for composing
// #DO_NOT_RENDER directives. Ids are sorted naturally so "page10" follows
// "page9", not "page1".
func List(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no book source has been specified")
	}

	loc, err := loadLocalization(env, log)
	if err != nil {
		return err
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open book source: %w", err)
	}
	defer f.Close()

	b, err := book.Load(f, loc)
	if err != nil {
		return fmt.Errorf("unable to load book source (%s): %w", src, err)
	}

	for _, c := range b.Categories {
		fmt.Printf("%s: %s\n", c.ID, c.Name.PlainText())

		ids := make([]string, 0, len(c.Entries))
		names := make(map[string]string, len(c.Entries))
		for _, e := range c.Entries {
			ids = append(ids, e.ID)
			names[e.ID] = e.Name.PlainText()
		}
		slices.SortFunc(ids, func(a, b string) int {
			if natural.Less(a, b) {
				return -1
			}
			if natural.Less(b, a) {
				return 1
			}
			return 0
		})
		for _, id := range ids {
			fmt.Printf("\t%s: %s (%d pages)\n", id, names[id], pageCount(c, id))
		}
	}
	return nil
}

func pageCount(c book.Category, id string) int {
	for _, e := range c.Entries {
		if e.ID == id {
			return len(e.Pages)
		}
	}
	return 0
}
