// @title        Caja POS API
// @version      1.0
// @description  Cash register sessions, orders and the kitchen display.
// @BasePath     /
// @securityDefinitions.basic BasicAuth
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/MikeMC777/caja-pos/docs"
	"github.com/MikeMC777/caja-pos/internal/config"
	"github.com/MikeMC777/caja-pos/internal/db"
	"github.com/MikeMC777/caja-pos/internal/events"
	"github.com/MikeMC777/caja-pos/internal/logging"
	"github.com/MikeMC777/caja-pos/internal/memstore"
	"github.com/MikeMC777/caja-pos/internal/metrics"
	"github.com/MikeMC777/caja-pos/internal/order"
	"github.com/MikeMC777/caja-pos/internal/product"
	"github.com/MikeMC777/caja-pos/internal/register"
	"github.com/MikeMC777/caja-pos/internal/registry"
	"github.com/MikeMC777/caja-pos/internal/user"
)

// registerHealthService reports SERVING while a cash register is open.
const registerHealthService = "pos.register"

type stores struct {
	registers register.Repository
	orders    order.Repository
	products  product.Repository
	users     user.Repository
	pool      *pgxpool.Pool
}

func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (*stores, error) {
	if cfg.StoreDriver == "memory" {
		logger.Warn("using in-memory store; data is lost on restart")
		st := memstore.New()
		return &stores{registers: st.Registers(), orders: st.Orders(), products: st.Products(), users: st.Users()}, nil
	}
	pool, err := db.Connect(ctx, cfg.PostgresDSN, cfg.DBConnectRetries, cfg.DBRetryDelay, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}
	return &stores{
		registers: register.NewPGRepo(pool),
		orders:    order.NewPGRepo(pool),
		products:  product.NewPGRepo(pool),
		users:     user.NewPGRepo(pool),
		pool:      pool,
	}, nil
}

func newPublisher(cfg config.Config, logger *zap.Logger) events.Publisher {
	switch cfg.EventsDriver {
	case "rabbitmq":
		p, err := events.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			logger.Error("rabbitmq unavailable, events disabled", zap.Error(err))
			return events.Nop{}
		}
		return p
	case "kafka":
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	case "", "none":
		return events.Nop{}
	default:
		logger.Warn("unknown EVENTS_DRIVER, events disabled", zap.String("driver", cfg.EventsDriver))
		return events.Nop{}
	}
}

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	for k, v := range cfg.Fields() {
		logger.Info("config", zap.String("key", k), zap.String("value", v))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("store", zap.Error(err))
	}
	if st.pool != nil {
		defer st.pool.Close()
	}

	users := user.NewService(st.users)
	if created, err := users.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("seed admin", zap.Error(err))
	} else if created {
		logger.Info("seed admin created", zap.String("username", cfg.AdminUsername))
	}

	pub := newPublisher(cfg, logger)
	defer func() { _ = pub.Close() }()

	m := metrics.New(prometheus.DefaultRegisterer)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(registerHealthService, healthpb.HealthCheckResponse_NOT_SERVING)

	reg := registry.New(st.registers, st.orders,
		registry.WithCatalog(st.products),
		registry.WithPublisher(pub),
		registry.WithLogger(logger),
		registry.WithMetrics(m),
		registry.WithRegisterListener(func(open bool) {
			if open {
				hs.SetServingStatus(registerHealthService, healthpb.HealthCheckResponse_SERVING)
			} else {
				hs.SetServingStatus(registerHealthService, healthpb.HealthCheckResponse_NOT_SERVING)
			}
		}),
	)
	if err := reg.Start(ctx); err != nil {
		logger.Fatal("load register state", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(deps{
		reg:          reg,
		products:     st.products,
		users:        users,
		metrics:      m,
		log:          logger,
		authEnabled:  cfg.AuthEnabled,
		historyLimit: cfg.HistoryDefaultLimit,
	})
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("grpc listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		logger.Info("grpc health listening", zap.String("addr", cfg.GRPCAddr))
		if err := gs.Serve(lis); err != nil {
			logger.Error("grpc serve", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("pos-service listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	hs.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	gs.GracefulStop()
}
