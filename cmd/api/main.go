package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesclient"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesClient := salesclient.NewClient(cfg)
	salesIntegrator := salesapi.New(salesClient)

	dashboardService := dashboard.NewService(salesIntegrator, cfg)
	renderer := charting.NewRenderer(cfg)

	upstreamProbe := scheduler.NewUpstreamProbeService(salesIntegrator, cfg)
	if err := upstreamProbe.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a sonda da API de vendas")
	} else {
		logrus.WithFields(logrus.Fields{
			"sales_api_url": cfg.SalesAPI.URL,
			"enabled":       cfg.SalesAPIProbe.Enabled,
		}).Info("Sonda da API de vendas configurada")
	}

	server, err := api.New(cfg, dashboardService, renderer, upstreamProbe)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
