package main

import (
	"go.uber.org/fx"

	"github.com/foliohq/folio/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
