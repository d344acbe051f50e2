package commands

import (
	"fmt"
	"time"

	"github.com/rella-labs/profitkit/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// ProbeCmd verifies that a credential profile can reach the upstream by
// issuing one real, paginated read.
type ProbeCmd struct {
	commonFlags
	reporter *export.Reporter
}

func NewProbeCmd(reporter *export.Reporter) *cobra.Command {
	pc := &ProbeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Verify credentials against the upstream API",
		RunE:  pc.run,
	}

	registerCommonFlags(&pc.commonFlags, cmd.Flags())
	_ = cmd.MarkFlagRequired("profiles")

	return cmd
}

func (pc *ProbeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings, err := pc.loadSettings()
	if err != nil {
		return err
	}
	// One page is enough to prove the credentials work.
	settings.Client.MaxPages = 1

	fetcher, err := pc.buildFetcher(ctx, settings)
	if err != nil {
		return err
	}

	started := time.Now()
	locations, err := fetcher.FetchLocations(ctx)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}

	return pc.reporter.HandleJSON(map[string]any{
		"status":      "ok",
		"latency_ms":  time.Since(started).Milliseconds(),
		"locations":   len(locations),
		"profile":     pc.profile,
		"probed_with": "locations query",
	})
}
