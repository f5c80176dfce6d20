package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eod_backend/internal/platform/externalapi/marketstack"
	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

func newURLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url --symbols AAPL,MSFT [--date 2024-01-05]",
		Short: "Print the fully formed upstream request URL",
		Args:  cobra.NoArgs,
		RunE:  runURL,
	}

	f := cmd.Flags()
	f.String("access-key", "", "API access key (default $MARKETSTACK_ACCESS_KEY)")
	f.String("base-url", "", "API base URL (default depends on $MARKETSTACK_FREE_TIER)")
	f.StringSlice("symbols", nil, "comma separated tickers")
	f.String("exchange", "", "MIC exchange filter, e.g. XNAS")
	f.String("sort", "DESC", "ASC or DESC")
	f.String("date", "latest", "latest or a trading day (YYYY-MM-DD)")
	f.String("from", "", "date_from (YYYY-MM-DD)")
	f.String("to", "", "date_to (YYYY-MM-DD)")
	f.Uint("limit", 0, "page size")
	f.Uint("offset", 0, "page offset")
	return cmd
}

func runURL(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	cfg := marketstack.LoadConfig()
	if key, _ := f.GetString("access-key"); key != "" {
		cfg.AccessKey = key
	}
	if base, _ := f.GetString("base-url"); base != "" {
		cfg.BaseURL = base
	}

	symbols, err := f.GetStringSlice("symbols")
	if err != nil {
		return err
	}
	exchange, _ := f.GetString("exchange")
	b := cfg.NewQueryBuilder().Symbols(symbols...).Exchange(exchange)

	rawSort, _ := f.GetString("sort")
	sort, err := dto.ParseSortOrder(rawSort)
	if err != nil {
		return err
	}
	b.Sort(sort)

	for _, name := range []string{"from", "to"} {
		if !f.Changed(name) {
			continue
		}
		raw, _ := f.GetString(name)
		d, err := dto.ParseCalendarDate(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		if name == "from" {
			b.DateFrom(d)
		} else {
			b.DateTo(d)
		}
	}
	if f.Changed("limit") {
		n, _ := f.GetUint("limit")
		b.Limit(n)
	}
	if f.Changed("offset") {
		n, _ := f.GetUint("offset")
		b.Offset(n)
	}

	q, err := b.Build()
	if err != nil {
		return err
	}
	rawDate, _ := f.GetString("date")
	endpoint, err := dto.ParseEndpointType(rawDate)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.RequestURL(dto.NewEodRequest(endpoint, q)))
	return err
}
