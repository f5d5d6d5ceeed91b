package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/cmd"
	httpin "github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/in/http"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/agentrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/loyaltyrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateAssignPendingOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&agentrepo.AgentDTO{},
		&agentrepo.AgentPincodeDTO{},
		&loyaltyrepo.AccountDTO{},
		&loyaltyrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateCollectCodPaymentCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateRequestReturnExchangeCommandHandler(),
		app.CreateUpdateReturnStatusCommandHandler(),
		app.CreateRegisterAgentCommandHandler(),
		app.CreateRedeemPointsCommandHandler(),
		app.CreateApplyReferralCommandHandler(),
		app.CreateGetAllAgentsQueryHandler(),
		app.CreateGetAgentOrdersQueryHandler(),
		app.CreateGetUnassignedOrdersQueryHandler(),
		app.CreateGetLoyaltyDashboardQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
