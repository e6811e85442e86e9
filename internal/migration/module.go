package migration

import "go.uber.org/fx"

// Module wires the migrator for CLI use.
var Module = fx.Provide(New)
