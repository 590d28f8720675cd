package main

import (
	"context"
	"os"

	"gitlab.com/goxp/cloud0/logger"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/route"
	"agrifresh/ms-marketplace/pkg/utils"
)

const (
	APPNAME = "Marketplace"
)

func main() {
	conf.SetEnv()
	logger.Init(APPNAME)
	utils.LoadMessageError()

	// BaseApp only needs PORT; its own DB layer stays off, the store is picked in route
	_ = os.Setenv("PORT", conf.LoadEnv().Port)
	_ = os.Setenv("ENABLE_DB", "false")

	app := route.NewService()
	ctx := context.Background()
	err := app.Start(ctx)
	if err != nil {
		logger.Tag("main").Error(err)
	}
	os.Clearenv()
}
