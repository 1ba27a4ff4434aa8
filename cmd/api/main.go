package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickmart/internal/config"
	"quickmart/internal/dispatch"
	"quickmart/internal/handler"
	"quickmart/internal/infra/memory"
	"quickmart/internal/logger"
	"quickmart/internal/server"
	"quickmart/internal/usecase"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		//Fatalはバッファを書き出してから終了する
		log.Fatal("server stopped", "error", err)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	catalog, err := memory.DefaultCatalog()
	if err != nil {
		return err
	}

	//Repository（メモリ実装）生成
	categoryRepo := memory.NewCategoryStore(memory.CategoryDelays.Scale(cfg.LatencyFactor), catalog.Categories)
	productRepo := memory.NewProductStore(memory.ProductDelays.Scale(cfg.LatencyFactor), catalog.Products)
	orderRepo := memory.NewOrderStore(memory.OrderDelays.Scale(cfg.LatencyFactor), nil)
	cartRepo := memory.NewCartStore()

	//Usecase生成
	clock := &realClock{}
	catalogUC := usecase.NewCatalogUsecase(categoryRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, catalogUC)
	orderUC := usecase.NewOrderUsecase(orderRepo, clock)
	checkoutUC := usecase.NewCheckoutUsecase(orderUC)

	//Handler生成
	e := server.New(log,
		handler.NewCatalogHandler(catalogUC),
		handler.NewAdminProductHandler(catalogUC),
		handler.NewCartHandler(cartUC),
		handler.NewOrderHandler(orderUC, checkoutUC, cartUC),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.Addr(), "env", cfg.GoEnv, "latency_factor", cfg.LatencyFactor)
		return server.Start(ctx, e, cfg.Addr(), cfg.ShutdownTimeout)
	})
	if cfg.DispatchInterval > 0 {
		d := dispatch.New(orderUC, cfg.DispatchInterval, log)
		g.Go(func() error {
			return d.Run(ctx)
		})
	}
	return g.Wait()
}
