package contact

import "go.uber.org/fx"

// Module provides the contact service to Fx.
var Module = fx.Provide(NewService)
