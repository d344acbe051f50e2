package commands

import (
	"fmt"
	"time"

	"github.com/rella-labs/profitkit/pkg/adapters"
	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/rella-labs/profitkit/pkg/runtime/terminal/export"
	"github.com/rella-labs/profitkit/pkg/services/analytics"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	commonFlags
	locationID string
	from       string
	to         string
	asJSON     bool
	reporter   *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate order profitability for a location and date range",
		RunE:  ac.run,
	}

	registerCommonFlags(&ac.commonFlags, cmd.Flags())
	cmd.Flags().StringVar(&ac.locationID, "location", "", "Location id to analyze")
	cmd.Flags().StringVar(&ac.from, "from", "", "Range start (YYYY-MM-DD), default 30 days ago")
	cmd.Flags().StringVar(&ac.to, "to", "", "Range end (YYYY-MM-DD), default today")
	cmd.Flags().BoolVar(&ac.asJSON, "json", false, "Emit the full aggregate as JSON")

	_ = cmd.MarkFlagRequired("profiles")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dateRange, err := ac.dateRange()
	if err != nil {
		return err
	}

	settings, err := ac.loadSettings()
	if err != nil {
		return err
	}

	fetcher, err := ac.buildFetcher(ctx, settings)
	if err != nil {
		return err
	}

	resolver, err := buildResolver(ctx, settings)
	if err != nil {
		return err
	}

	orders, err := fetcher.FetchOrders(ctx, ac.locationID, dateRange)
	if err != nil {
		return fmt.Errorf("fetch orders: %w", err)
	}

	engine := analytics.NewEngine(resolver)
	summary := adapters.MapDomainProfitSummaryToApi(*engine.Aggregate(ctx, orders))

	if ac.asJSON {
		return ac.reporter.HandleJSON(summary)
	}
	return ac.reporter.HandleSummary(summary)
}

const dateLayout = "2006-01-02"

func (ac *AnalyzeCmd) dateRange() (domain.DateRange, error) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -30)

	var err error
	if ac.from != "" {
		start, err = time.Parse(dateLayout, ac.from)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid --from date %q: %w", ac.from, err)
		}
	}
	if ac.to != "" {
		end, err = time.Parse(dateLayout, ac.to)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid --to date %q: %w", ac.to, err)
		}
	}
	if end.Before(start) {
		return domain.DateRange{}, fmt.Errorf("range end %s precedes start %s", end.Format(dateLayout), start.Format(dateLayout))
	}
	return domain.DateRange{Start: start, End: end}, nil
}
