package ports

import "github.com/refract-dev/refract/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds and reads the configuration starting from the given
	// working directory and returns the resolved project layout.
	Load(cwd string) (*domain.Project, error)

	// DiscoverRoot walks up from cwd to the directory containing
	// refract.yaml without parsing it.
	DiscoverRoot(cwd string) (string, error)
}
