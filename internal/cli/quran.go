package cli

import (
	"fmt"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

type PageCmd struct {
	Chapter int `arg:"" help:"Chapter number, 1-114."`
	Verse   int `arg:"" help:"Verse within the chapter."`
}

func (c *PageCmd) Run(ctx *Context) error {
	pos := domain.QuranPosition{Chapter: c.Chapter, Verse: c.Verse}
	if err := pos.Validate(domain.DefaultQuranTable); err != nil {
		return fmt.Errorf("%d:%d: %w", c.Chapter, c.Verse, err)
	}

	page := domain.ApproximatePage(pos, domain.DefaultQuranTable, domain.QuranTotalPages)
	fmt.Fprintf(ctx.Out, "%d:%d is on page %d of %d\n", c.Chapter, c.Verse, page, domain.QuranTotalPages)
	return nil
}
