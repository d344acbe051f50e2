package config

import (
	"context"
	"fmt"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads credential profiles from an ini file, one section per
// business account.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCredentials(ctx context.Context, profile string) (domain.Credentials, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetCredentials(_ context.Context, profile string) (domain.Credentials, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("profile %s not found", profile)
	}

	return domain.Credentials{
		KeyID:         section.Key("key_id").String(),
		SigningSecret: section.Key("signing_secret").String(),
		BusinessID:    section.Key("business_id").String(),
		Endpoint:      section.Key("endpoint").String(),
	}, nil
}
