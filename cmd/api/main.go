package main

import (
	"shoplite/internal/config"
	"shoplite/internal/domain/model"
	"shoplite/internal/handler"
	"shoplite/internal/infra/db"
	infraRepo "shoplite/internal/infra/repository"
	"shoplite/internal/server"
	"shoplite/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envはローカル用。無ければ環境変数だけで動く。
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.DailySalesSummary{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reportRepo := infraRepo.NewReportGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	reportUC := usecase.NewReportUsecase(reportRepo, productRepo)
	toolsUC := usecase.NewToolsUsecase(txManager, reportRepo)

	//Handler生成
	handlers := server.Handlers{
		Product: handler.NewProductHandler(productUC),
		Order:   handler.NewOrderHandler(orderUC),
		Report:  handler.NewReportHandler(reportUC),
		Tools:   handler.NewToolsHandler(toolsUC),
	}

	//Server起動
	e := server.New(cfg, handlers)

	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
