package bootstrap

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"givebridge-be/internal/config"
	"givebridge-be/internal/controller"
	"givebridge-be/internal/pkg/logger"
	"givebridge-be/internal/pkg/mailer"
	"givebridge-be/internal/repository/unitofwork"
	"givebridge-be/internal/service"
	"givebridge-be/internal/websocket"
	"givebridge-be/pkg/eventbus"
	pkgnats "givebridge-be/pkg/nats"
	"givebridge-be/pkg/paygate"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	DonationController     controller.IDonationController
	RequestController      controller.IRequestController
	CampaignController     controller.ICampaignController
	PaymentController      controller.IPaymentController
	RewardController       controller.IRewardController
	NotificationController controller.INotificationController
	AdminController        controller.IAdminController

	// WebSockets
	WebSocketHandler *websocket.Handler
	WebSocketHub     *websocket.Hub

	// Background consumers, started by main
	MailConsumer *service.MailConsumer

	Bus    *eventbus.Bus
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// Redis is optional. Without it, unread counters fall back to the
	// database and websocket pushes stay instance-local.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, continuing without Redis: %v", err)
		} else {
			rdb = redis.NewClient(opt)
			if err := rdb.Ping(context.Background()).Err(); err != nil {
				log.Printf("[WARN] Redis unreachable, continuing without it: %v", err)
				rdb = nil
			}
		}
	}

	// NATS is optional too. Events are still delivered in-process.
	var forwarder eventbus.Forwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pkgnats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect NATS publisher: %v", err)
		} else {
			forwarder = natsPub
		}
	}
	bus := eventbus.New(forwarder)

	hub := websocket.NewHub(rdb, sysLogger)
	go hub.Run()

	gateway := paygate.NewSSLCommerzClient(
		cfg.Payment.Endpoint,
		cfg.Payment.StoreID,
		cfg.Payment.StorePass,
	)

	// Services
	notificationService := service.NewNotificationService(uowFactory, rdb, hub, sysLogger)
	rewardService := service.NewRewardService(uowFactory, notificationService, bus, sysLogger)
	authService := service.NewAuthService(uowFactory, bus)
	userService := service.NewUserService(uowFactory)
	donationService := service.NewDonationService(uowFactory, rewardService, notificationService, bus, sysLogger)
	requestService := service.NewRequestService(uowFactory, rewardService, notificationService, bus, sysLogger)
	campaignService := service.NewCampaignService(uowFactory)
	paymentService := service.NewPaymentService(uowFactory, gateway, cfg, rewardService, notificationService, bus, sysLogger)
	adminService := service.NewAdminService(uowFactory, rewardService, notificationService, bus, sysLogger)

	mailConsumer := service.NewMailConsumer(emailService, bus, sysLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		DonationController:     controller.NewDonationController(donationService),
		RequestController:      controller.NewRequestController(requestService),
		CampaignController:     controller.NewCampaignController(campaignService),
		PaymentController:      controller.NewPaymentController(paymentService),
		RewardController:       controller.NewRewardController(rewardService),
		NotificationController: controller.NewNotificationController(notificationService),
		AdminController:        controller.NewAdminController(adminService, paymentService),

		WebSocketHandler: websocket.NewHandler(hub),
		WebSocketHub:     hub,

		MailConsumer: mailConsumer,

		Bus:    bus,
		Logger: sysLogger,
	}
}
