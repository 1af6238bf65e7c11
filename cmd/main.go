package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-ordering-backend/config"
	_ "food-ordering-backend/docs"
	"food-ordering-backend/internal/broker"
	"food-ordering-backend/internal/handler"
	"food-ordering-backend/internal/ports"
	"food-ordering-backend/internal/realtime"
	"food-ordering-backend/internal/repository"
	"food-ordering-backend/internal/security"
	"food-ordering-backend/internal/service"
	"food-ordering-backend/migrations"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

const tokenPurgeInterval = time.Hour

// @title Food ordering backend
// @version 1.0
// @description REST API сервиса заказа еды: меню, заказы и уведомления в реальном времени

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logrus.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	logger := config.SetupLogger(cfg.Env)

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		logger.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := migrations.Up(ctx, db.DB.DB); err != nil {
		logger.Fatalf("Ошибка миграций: %v", err)
	}

	var unreadCache ports.UnreadCountCache
	if cfg.RedisConfig.Addr != "" {
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			logger.Fatalf("Ошибка подключения к Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Errorf("Ошибка при закрытии Redis: %v", err)
			}
		}()
		unreadCache = repository.NewCacheRepository(redisClient, cfg.RedisConfig.UnreadTTL)
	} else {
		logger.Warn("Redis не настроен, счётчик непрочитанных считается в БД")
	}

	var storage ports.ObjectStorage
	if cfg.S3Config.Bucket != "" {
		s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
		if err != nil {
			logger.Fatalf("Ошибка создания S3 сервиса: %v", err)
		}
		storage = s3Service
	} else {
		logger.Warn("S3 не настроен, загрузка картинок отключена")
	}

	var publisher ports.EventPublisher = broker.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := broker.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			logger.Fatalf("Ошибка подключения к RabbitMQ: %v", err)
		}
		publisher = rabbit
	}
	defer publisher.Close()

	userRepo := repository.NewUserRepository()
	refreshTokenRepo := repository.NewRefreshTokenRepository()
	addressRepo := repository.NewAddressRepository()
	categoryRepo := repository.NewCategoryRepository()
	itemRepo := repository.NewItemRepository()
	orderRepo := repository.NewOrderRepository()
	orderItemRepo := repository.NewOrderItemRepository()
	notificationRepo := repository.NewNotificationRepository()

	jwtService := security.NewJWTService(&cfg.JWT)
	registry := realtime.NewRegistry()
	hub := realtime.NewHub(registry)

	authService := service.NewAuthenticationService(db, jwtService, refreshTokenRepo, userRepo, addressRepo)
	userService := service.NewUserService(db, userRepo, addressRepo)
	addressService := service.NewAddressService(db, addressRepo)
	categoryService := service.NewCategoryService(db, categoryRepo)
	itemService := service.NewItemService(db, itemRepo, categoryRepo, storage, cfg.S3Config.PresignTTL)
	notificationService := service.NewNotificationService(db, notificationRepo, unreadCache, hub)
	orderService := service.NewOrderService(db, orderRepo, orderItemRepo, itemRepo, addressRepo, userRepo, notificationService, publisher)

	authHandler := handler.NewAuthenticationHandler(authService, security.NewRefreshCookie(cfg.Cookie))
	userHandler := handler.NewUserHandler(userService)
	addressHandler := handler.NewAddressHandler(addressService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	itemHandler := handler.NewItemHandler(itemService)
	orderHandler := handler.NewOrderHandler(orderService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	wsHandler := realtime.NewHandler(jwtService, registry, hub, notificationService, cfg.Realtime, cfg.CORS.AllowedOrigin)

	srv, router := config.SetupServer(cfg.ServerAddr)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(handler.RequestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(handler.CORS(cfg.CORS.AllowedOrigin))

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/ws", wsHandler)

	authenticated := security.JWTMiddleware(jwtService, userService)

	setupAuthRoutes(router, authHandler, authenticated)
	setupUserRoutes(router, userHandler, authenticated)
	setupAddressRoutes(router, addressHandler, authenticated)
	setupCatalogRoutes(router, categoryHandler, itemHandler, authenticated)
	setupOrderRoutes(router, orderHandler, authenticated)
	setupNotificationRoutes(router, notificationHandler, authenticated)

	go purgeExpiredTokens(ctx, authService)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, authenticated func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.With(handler.LoginRateLimit()).Post("/login", h.Login)
		r.With(handler.RefreshRateLimit()).Post("/refresh", h.Refresh)
		r.Post("/logout", h.Logout)
		r.With(authenticated).Get("/profile", h.Profile)
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, authenticated func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.With(handler.RegisterRateLimit()).Post("/", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Patch("/me", h.UpdateMe)
			r.Delete("/me", h.DeleteMe)
			r.Get("/{id}", h.GetUser)
			r.Get("/{id}/addresses", h.GetUserAddresses)
		})
	})
}

func setupAddressRoutes(r chi.Router, h *handler.AddressHandler, authenticated func(http.Handler) http.Handler) {
	r.Route("/api/addresses", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.ListMine)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func setupCatalogRoutes(r chi.Router, categories *handler.CategoryHandler, items *handler.ItemHandler, authenticated func(http.Handler) http.Handler) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", categories.ListCategories)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, security.RequireAdmin)
			r.Post("/", categories.CreateCategory)
			r.Patch("/{id}", categories.UpdateCategory)
			r.Delete("/{id}", categories.DeleteCategory)
		})
	})

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", items.ListItems)
		r.Get("/{id}", items.GetItem)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, security.RequireAdmin)
			r.Post("/", items.CreateItem)
			r.Patch("/{id}", items.UpdateItem)
			r.Delete("/{id}", items.DeleteItem)
			r.Post("/{id}/image-upload-url", items.CreateImageUploadURL)
			r.Put("/{id}/image", items.ConfirmImageUpload)
		})
	})
}

func setupOrderRoutes(r chi.Router, h *handler.OrderHandler, authenticated func(http.Handler) http.Handler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authenticated)
		r.Post("/", h.CreateOrder)
		r.Get("/client/{clientId}", h.ListClientOrders)
		r.Get("/{id}", h.GetOrder)

		r.Group(func(r chi.Router) {
			r.Use(security.RequireAdmin)
			r.Get("/", h.ListOrders)
			r.Patch("/{id}", h.UpdateOrderStatus)
			r.Delete("/{id}", h.DeleteOrder)
		})
	})
}

func setupNotificationRoutes(r chi.Router, h *handler.NotificationHandler, authenticated func(http.Handler) http.Handler) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.ListNotifications)
		r.Get("/unread-count", h.UnreadCount)
		r.Post("/read-all", h.MarkAllAsRead)
		r.Post("/{id}/read", h.MarkAsRead)
	})
}

// purgeExpiredTokens : раз в час чистит просроченные refresh токены
func purgeExpiredTokens(ctx context.Context, authService *service.AuthenticationService) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := authService.PurgeExpiredTokens(ctx)
			if err != nil {
				logrus.WithError(err).Error("ошибка очистки просроченных refresh токенов")
				continue
			}
			if deleted > 0 {
				logrus.WithField("deleted", deleted).Info("просроченные refresh токены удалены")
			}
		}
	}
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		logrus.Info("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		logrus.Infof("получен сигнал %v остановки работы сервера", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		logrus.Errorf("ошибка при остановке сервера: %v", err)
	} else {
		logrus.Info("Сервер успешно остановлен")
	}
}
