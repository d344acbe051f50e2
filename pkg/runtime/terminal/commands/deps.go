package commands

import (
	"context"
	"fmt"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/rella-labs/profitkit/pkg/services/boulevard"
	"github.com/rella-labs/profitkit/pkg/services/cache"
	"github.com/rella-labs/profitkit/pkg/services/config"
	"github.com/rella-labs/profitkit/pkg/services/cost"
	"github.com/rella-labs/profitkit/pkg/store/inventory"
	"github.com/rella-labs/profitkit/pkg/store/sqlite"
	"github.com/spf13/pflag"
)

// commonFlags are the connection flags shared by every subcommand.
type commonFlags struct {
	profilesPath string
	profile      string
	settingsPath string
	noCache      bool
}

func (cf *commonFlags) loadSettings() (*config.Settings, error) {
	return config.LoadSettings(cf.settingsPath)
}

func (cf *commonFlags) loadCredentials(ctx context.Context) (domain.Credentials, error) {
	registry, err := config.NewRegistry(cf.profilesPath)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("load profiles from %s: %w", cf.profilesPath, err)
	}
	return registry.GetCredentials(ctx, cf.profile)
}

func (cf *commonFlags) buildFetcher(ctx context.Context, settings *config.Settings) (boulevard.Fetcher, error) {
	creds, err := cf.loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	client, err := boulevard.NewClient(creds, boulevard.Options{
		Timeout:      settings.Client.Timeout,
		PageSize:     settings.Client.PageSize,
		MaxPages:     settings.Client.MaxPages,
		MaxNodes:     settings.Client.MaxNodes,
		MaxAttempts:  settings.Client.MaxAttempts,
		InitialDelay: settings.Client.InitialDelay,
	})
	if err != nil {
		return nil, err
	}

	if cf.noCache || !settings.Cache.Enabled {
		return client, nil
	}
	return boulevard.NewCachedClient(client, cache.New(settings.Cache.TTL)), nil
}

// buildResolver loads inventory costs when a store path is configured.
// Without one, resolution falls straight through to the kind ratios.
func buildResolver(ctx context.Context, settings *config.Settings) (*cost.Resolver, error) {
	cfg := cost.Config{
		SimilarityThreshold: settings.Cost.SimilarityThreshold,
		DefaultCostRatios: map[domain.LineKind]float64{
			domain.LineKindProduct:  settings.Cost.ProductCostRatio,
			domain.LineKindService:  settings.Cost.ServiceCostRatio,
			domain.LineKindGratuity: 0,
			domain.LineKindCredit:   0,
		},
	}

	if settings.Store.Path == "" {
		return cost.NewResolver(nil, cfg), nil
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: settings.Store.Path})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	store, err := inventory.NewStore(db)
	if err != nil {
		return nil, err
	}
	entries, err := store.GetCostEntries(ctx)
	if err != nil {
		return nil, err
	}
	return cost.NewResolver(entries, cfg), nil
}

func registerCommonFlags(cf *commonFlags, flags *pflag.FlagSet) {
	flags.StringVar(&cf.profilesPath, "profiles", "", "Path to the credential profiles file")
	flags.StringVar(&cf.profile, "profile", "default", "Credential profile name")
	flags.StringVar(&cf.settingsPath, "settings", "", "Path to the settings file (optional)")
	flags.BoolVar(&cf.noCache, "no-cache", false, "Bypass the response cache")
}
