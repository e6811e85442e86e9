package app

import (
	"go.uber.org/fx"

	"github.com/foliohq/folio/internal/ai"
	"github.com/foliohq/folio/internal/cache"
	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/database"
	"github.com/foliohq/folio/internal/logger"
	"github.com/foliohq/folio/internal/messaging"
	"github.com/foliohq/folio/internal/notification"
	"github.com/foliohq/folio/internal/observability"
	"github.com/foliohq/folio/internal/payment"
	repositoryairequest "github.com/foliohq/folio/internal/repository/airequest"
	repositorymessage "github.com/foliohq/folio/internal/repository/message"
	repositoryorder "github.com/foliohq/folio/internal/repository/order"
	repositoryproject "github.com/foliohq/folio/internal/repository/project"
	repositoryuser "github.com/foliohq/folio/internal/repository/user"
	httpserver "github.com/foliohq/folio/internal/server/http"
	serviceauth "github.com/foliohq/folio/internal/service/auth"
	servicecatalog "github.com/foliohq/folio/internal/service/catalog"
	servicecontact "github.com/foliohq/folio/internal/service/contact"
	serviceorder "github.com/foliohq/folio/internal/service/order"
	serviceproposal "github.com/foliohq/folio/internal/service/proposal"
	transporthttp "github.com/foliohq/folio/internal/transport/http"
	"github.com/foliohq/folio/internal/worker"
	workerorder "github.com/foliohq/folio/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	ai.Module,
	notification.Module,
	payment.Module,
	repositoryairequest.Module,
	repositorymessage.Module,
	repositoryorder.Module,
	repositoryproject.Module,
	repositoryuser.Module,
	serviceauth.Module,
	servicecatalog.Module,
	servicecontact.Module,
	serviceorder.Module,
	serviceproposal.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
