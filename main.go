package main

import (
	"company-settings-backend/config"
	apiv1 "company-settings-backend/controllers/v1"
	"company-settings-backend/fiberlog"
	"company-settings-backend/initializers"
	"company-settings-backend/middleware"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: int(config.Conf.App.UploadLimit),
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.HeaderCompanyID + ", " + fiberlog.HeaderRequestID,
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))
	apiV1.Use(middleware.WithBodyLimit(config.Conf.App.BodyLimit, config.Conf.App.UploadLimit, "/settings/files/"))
	apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotify))
	apiV1.Use(middleware.CompanyScope(config.Conf.Tenant.DefaultCompanyID))
	apiv1.InitSettingsRouters(apiV1)
	apiv1.InitOperationsRouters(apiV1)
	apiv1.InitActionsRouters(apiV1)
	apiv1.InitUsersRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
