// Package unitkit wires the unit-of-measure packages into a process.
//
// The work happens in the pkg/ tree:
//
//   - pkg/quantity is the generic Quantity type, unit tables, cultures,
//     parsing, formatting and abbreviation catalogs.
//   - pkg/resistance is the electric resistance kind.
//   - pkg/i18n loads YAML and JSON catalogs.
//   - pkg/logger builds slog loggers.
//   - pkg/config parses the environment.
//
// This package reads a Config from the environment and applies it with Setup:
//
//	cfg, err := unitkit.LoadConfig(".env")
//	if err != nil {
//		return err
//	}
//	rt, err := unitkit.Setup(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	rt.Logger.Info("ready", "culture", rt.Culture.String())
//
//	r, err := resistance.Parse("4,7 kΩ", quantity.DefaultCulture())
//
// Setup installs process-wide defaults in pkg/quantity and should run once at
// startup, before quantities are formatted concurrently.
package unitkit
