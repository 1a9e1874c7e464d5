package main

import (
	"fmt"
	"log/slog"
	"os"

	"ordertaking/cmd"
	adapterhttp "ordertaking/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, logger)
	defer func() {
		_ = app.Close()
	}()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		AddressServiceURL:     goDotEnvVariable("ADDRESS_SERVICE_URL"),
		AddressServiceTimeout: goDotEnvVariable("ADDRESS_SERVICE_TIMEOUT"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderPlacedTopic: goDotEnvVariable("KAFKA_ORDER_PLACED_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(app.CreatePlaceOrderCommandHandler(), app.EventPublisher())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
