package ports

import "go.trai.ch/lessco/internal/core/domain"

// ConfigLoader defines the interface for loading the lessco configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. path is either a config file or a directory
	// from which lessco.yaml is searched upwards.
	Load(path string) (*domain.Config, error)
}
