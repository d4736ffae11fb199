package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/comitanigiacomo/noor-sync-engine/internal/adapters/aladhan"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

type HijriCmd struct {
	Date   string `help:"Gregorian date, YYYY-MM-DD. Defaults to today."`
	Adjust int    `help:"Days to add, -2..2." default:"0"`
	Online bool   `help:"Ask the AlAdhan API instead of the tabular calendar."`
	APIURL string `name:"api-url" help:"AlAdhan base URL." default:"https://api.aladhan.com"`
}

func (c *HijriCmd) Run(ctx *Context) error {
	if c.Adjust < domain.MinHijriAdjustment || c.Adjust > domain.MaxHijriAdjustment {
		return domain.ErrInvalidHijriAdjustment
	}

	day := ctx.Now()
	if c.Date != "" {
		parsed, err := domain.ParseDateKey(c.Date, nil)
		if err != nil {
			return err
		}
		day = parsed
	}

	var authoritative *domain.HijriDate
	if c.Online {
		reqCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		h, err := aladhan.NewClient(aladhan.ClientConfig{BaseURL: c.APIURL}).HijriDate(reqCtx, day.AddDate(0, 0, c.Adjust))
		switch {
		case err != nil:
			log.Warn("online lookup failed, using local calendar", "err", err)
		case h != nil:
			authoritative = h
		}
	}

	adj := c.Adjust
	if authoritative != nil && authoritative.Validate() == nil {
		adj = 0
	}
	date := domain.DeriveHijriDate(authoritative, adj, day)
	fmt.Fprintf(ctx.Out, "%s -> %s\n", domain.DateKey(day), date)
	return nil
}
