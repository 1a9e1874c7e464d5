package cmd

import (
	"log/slog"
	"time"

	"ordertaking/internal/adapters/out/addressclient"
	"ordertaking/internal/adapters/out/catalog"
	"ordertaking/internal/adapters/out/notification"
	"ordertaking/internal/adapters/out/queue"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

const defaultAddressServiceTimeout = 5 * time.Second

type CompositionRoot struct {
	catalog        *catalog.InMemoryCatalog
	addressChecker *addressclient.Client
	renderer       *notification.LetterRenderer
	sender         *notification.LoggingSender
	publisher      *queue.KafkaEventPublisher
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	timeout, err := time.ParseDuration(config.AddressServiceTimeout)
	if err != nil {
		timeout = defaultAddressServiceTimeout
	}

	return CompositionRoot{
		catalog:        defaultCatalog(),
		addressChecker: addressclient.NewClient(config.AddressServiceURL, timeout),
		renderer:       notification.NewLetterRenderer(),
		sender:         notification.NewLoggingSender(logger),
		publisher:      queue.NewKafkaEventPublisher(config.KafkaHost, config.KafkaOrderPlacedTopic, logger),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.catalog, c.addressChecker, c.renderer, c.sender)
}

func (c *CompositionRoot) EventPublisher() ports.EventPublisher {
	return c.publisher
}

func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

// defaultCatalog seeds the in-memory catalog with the demo product range.
// A production deployment would load prices from a product service instead.
func defaultCatalog() *catalog.InMemoryCatalog {
	products := map[string]float64{
		"W1234": 10.00,
		"W5678": 25.50,
		"G123":  1.99,
		"G456":  3.75,
	}

	c := catalog.NewInMemoryCatalog(nil)
	for codeValue, amount := range products {
		code, err := order.NewProductCode(codeValue)
		if err != nil {
			continue
		}
		price, err := order.NewPrice(amount)
		if err != nil {
			continue
		}
		_ = c.AddProduct(code, price)
	}
	return c
}
