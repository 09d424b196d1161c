package main

import (
	"context"
	"time"

	"github.com/vitrinalabs/vitrina/config"
	"github.com/vitrinalabs/vitrina/internal/app"
	"github.com/vitrinalabs/vitrina/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)

	storefront.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	storefront.Close(ctx)
}
