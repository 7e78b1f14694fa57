package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderflow/order-taking-service/internal/api"
	"github.com/orderflow/order-taking-service/internal/api/dto"
	"github.com/orderflow/order-taking-service/internal/infrastructure/acknowledgment"
	"github.com/orderflow/order-taking-service/internal/infrastructure/addressing"
	"github.com/orderflow/order-taking-service/internal/infrastructure/catalog"
	"github.com/orderflow/order-taking-service/internal/infrastructure/eventbus"
	"github.com/orderflow/order-taking-service/internal/workflow"
	"github.com/orderflow/order-taking-service/pkg/errors"
	"github.com/orderflow/order-taking-service/pkg/logging"
	"github.com/orderflow/order-taking-service/pkg/metrics"
	"github.com/orderflow/order-taking-service/pkg/resilience"
)

const serviceName = "order-taking-service"

func main() {
	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(getEnv("LOG_LEVEL", "info"))
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting order-taking-service API")

	config := loadConfig()

	// Prometheus metrics
	metricsConfig := metrics.DefaultConfig(serviceName)
	m := metrics.New(metricsConfig)

	// Product catalog reference data
	productCatalog := catalog.NewInMemoryCatalog()
	if err := loadCatalog(productCatalog, config.CatalogFile); err != nil {
		logger.WithError(err).Error("Failed to load product catalog")
		os.Exit(1)
	}

	// Address verification behind a circuit breaker
	breaker := resilience.NewCircuitBreaker(
		resilience.DefaultCircuitBreakerConfig("address-verification"),
		logger.Logger,
		m.RecordCircuitBreakerTrip,
	)
	addressChecker := addressing.NewHTTPAddressChecker(
		addressing.DefaultConfig(config.AddressServiceURL), breaker, logger)

	// Acknowledgment letters through the email gateway
	letterWriter := acknowledgment.NewTemplateLetterWriter()
	ackSender := acknowledgment.NewHTTPAcknowledgmentSender(
		acknowledgment.DefaultSenderConfig(config.EmailGatewayURL), logger)

	// Kafka event publisher
	publisher := eventbus.NewKafkaPublisher(
		eventbus.DefaultConfig(config.KafkaBrokers, config.KafkaTopic),
		"/"+serviceName, logger, m)
	defer publisher.Close()
	logger.Info("Kafka publisher initialized", "brokers", config.KafkaBrokers, "topic", config.KafkaTopic)

	// The place-order workflow
	placeOrder := workflow.NewPlaceOrderService(
		productCatalog,
		addressChecker,
		letterWriter,
		ackSender,
		publisher,
		logger,
		m,
	)

	// Gin router with standard middleware
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestLogger(logger))
	router.Use(api.Metrics(m))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/orders", placeOrderHandler(placeOrder, logger))
	}

	srv := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server error")
		}
	}()
	logger.Info("Server started", "addr", config.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}

// Config holds application configuration
type Config struct {
	ServerAddr        string
	AddressServiceURL string
	EmailGatewayURL   string
	KafkaBrokers      []string
	KafkaTopic        string
	CatalogFile       string
}

func loadConfig() *Config {
	return &Config{
		ServerAddr:        getEnv("SERVER_ADDR", ":8080"),
		AddressServiceURL: getEnv("ADDRESS_SERVICE_URL", "http://localhost:8091"),
		EmailGatewayURL:   getEnv("EMAIL_GATEWAY_URL", "http://localhost:8092"),
		KafkaBrokers:      strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:        getEnv("KAFKA_TOPIC", "ordertaking.events"),
		CatalogFile:       getEnv("CATALOG_FILE", ""),
	}
}

// loadCatalog seeds the catalog from a JSON file of code-to-price strings,
// or with a small default set when no file is configured.
func loadCatalog(c *catalog.InMemoryCatalog, path string) error {
	prices := map[string]string{
		"W1234": "5.00",
		"W5678": "12.50",
		"G123":  "3.25",
		"G456":  "9.99",
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		prices = map[string]string{}
		if err := json.Unmarshal(data, &prices); err != nil {
			return err
		}
	}
	return c.Load(prices)
}

func placeOrderHandler(service *workflow.PlaceOrderService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PlaceOrderRequest
		if appErr := api.BindAndValidate(c, &req); appErr != nil {
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		events, err := service.PlaceOrder(c.Request.Context(), req.ToUnvalidatedOrder())
		if err != nil {
			appErr := errors.FromWorkflowError(err)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		c.JSON(http.StatusCreated, dto.FromEvents(events))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
