package page

import (
	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-playground/config"
	"github.com/Carmen-Shannon/oxy-playground/engine/viewport"
)

// PageBuilderOption is a functional option for configuring a Page.
type PageBuilderOption func(*page)

// WithConfig sets the page configuration. Defaults to config.Default().
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - PageBuilderOption: the configured option
func WithConfig(cfg config.Config) PageBuilderOption {
	return func(p *page) {
		p.cfg = cfg
	}
}

// WithLogger sets the page logger. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - PageBuilderOption: the configured option
func WithLogger(logger *zap.SugaredLogger) PageBuilderOption {
	return func(p *page) {
		p.logger = logger
	}
}

// WithPageViewport sets a pre-configured viewport instead of letting the
// page create one on first appearance. Useful in tests.
//
// Parameters:
//   - v: the viewport to host
//
// Returns:
//   - PageBuilderOption: the configured option
func WithPageViewport(v viewport.Viewport) PageBuilderOption {
	return func(p *page) {
		p.viewport = v
	}
}
