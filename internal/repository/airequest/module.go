package airequest

import "go.uber.org/fx"

// Module provides the AI request repository to Fx.
var Module = fx.Provide(NewRepository)
