package http

import (
	"go.uber.org/fx"

	authtransport "github.com/foliohq/folio/internal/transport/http/auth"
	messagetransport "github.com/foliohq/folio/internal/transport/http/message"
	ordertransport "github.com/foliohq/folio/internal/transport/http/order"
	projecttransport "github.com/foliohq/folio/internal/transport/http/project"
	proposaltransport "github.com/foliohq/folio/internal/transport/http/proposal"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	authtransport.Module,
	messagetransport.Module,
	ordertransport.Module,
	projecttransport.Module,
	proposaltransport.Module,
)
