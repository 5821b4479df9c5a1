package service

import (
	"testing"

	"github.com/alexhernandez-git/freelanium/internal/config"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"github.com/alexhernandez-git/freelanium/internal/repo"
	"github.com/alexhernandez-git/freelanium/pkg/clients"
	"github.com/alexhernandez-git/freelanium/pkg/fxrates"
	"github.com/alexhernandez-git/freelanium/pkg/gateway"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, mockTxManager)

	cfg := &config.Config{
		GatewayAddress: "http://localhost:8082",
		FXAddress:      "http://localhost:8083",
		ClearanceDays:  14,
	}
	gw := gateway.New(cfg, clients.NewHTTPClient())
	rates := fxrates.New(cfg, clients.NewHTTPClient())

	services := New(cfg, repos, gw, rates, mockTxManager)

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.PricingService)
	assert.NotNil(t, services.Reconciler)
}
