package impl

import (
	"io"
	"log/slog"
	"time"

	"petverse/config"
	"petverse/internal/domain/entity"
	"petverse/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Timeout = time.Second
	cfg.Storage.AddressWriteAttempts = 3
	cfg.Gateway.Currency = "INR"
	cfg.Checkout.FreeShippingThreshold = 50000
	cfg.Checkout.FlatShippingFee = 5000

	return cfg
}

func homeAddressInput(name string) *usecase.AddressInput {
	return &usecase.AddressInput{
		Name:         name,
		Phone:        "+91 98765 43210",
		Email:        "buyer@example.com",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "KA",
		PostalCode:   "560001",
	}
}

func deliveryAddress() *entity.DeliveryAddress {
	return &entity.DeliveryAddress{
		Name:         "Asha",
		Phone:        "+91 98765 43210",
		Email:        "buyer@example.com",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "KA",
		PostalCode:   "560001",
	}
}

func defaultsOf(addresses []*entity.Address) []string {
	var ids []string
	for _, addr := range addresses {
		if addr.IsDefault {
			ids = append(ids, addr.AddressID)
		}
	}

	return ids
}
