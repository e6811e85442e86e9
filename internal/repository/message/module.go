package message

import "go.uber.org/fx"

// Module provides the message repository to Fx.
var Module = fx.Provide(NewRepository)
