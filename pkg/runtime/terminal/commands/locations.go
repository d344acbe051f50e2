package commands

import (
	"fmt"

	"github.com/rella-labs/profitkit/pkg/adapters"
	"github.com/rella-labs/profitkit/pkg/models/api"
	"github.com/rella-labs/profitkit/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type LocationsCmd struct {
	commonFlags
	reporter *export.Reporter
}

func NewLocationsCmd(reporter *export.Reporter) *cobra.Command {
	lc := &LocationsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the business's locations",
		RunE:  lc.run,
	}

	registerCommonFlags(&lc.commonFlags, cmd.Flags())
	_ = cmd.MarkFlagRequired("profiles")

	return cmd
}

func (lc *LocationsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings, err := lc.loadSettings()
	if err != nil {
		return err
	}

	fetcher, err := lc.buildFetcher(ctx, settings)
	if err != nil {
		return err
	}

	locations, err := fetcher.FetchLocations(ctx)
	if err != nil {
		return fmt.Errorf("fetch locations: %w", err)
	}

	out := make([]api.Location, 0, len(locations))
	for _, location := range locations {
		out = append(out, adapters.MapDomainLocationToApi(location))
	}
	return lc.reporter.HandleLocations(out)
}
