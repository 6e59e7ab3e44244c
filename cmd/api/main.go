package main

import (
	"log"

	"github.com/joho/godotenv"

	"hopyfy/internal/config"
	"hopyfy/internal/domain/model"
	"hopyfy/internal/handler"
	"hopyfy/internal/infra/db"
	"hopyfy/internal/infra/gateway"
	"hopyfy/internal/infra/mail"
	"hopyfy/internal/infra/redisx"
	infraRepo "hopyfy/internal/infra/repository"
	"hopyfy/internal/server"
	"hopyfy/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Review{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb := redisx.New(cfg.RedisAddr)
	otpStore := redisx.NewOTPStore(rdb)

	rzp := gateway.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.GatewayTimeout)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	productUC := usecase.NewProductUsecase(productRepo, categoryRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, cartRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	paymentUC := usecase.NewPaymentUsecase(txManager, cartRepo, productRepo, rzp)
	orderUC := usecase.NewOrderUsecase(txManager)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager)
	resetUC := usecase.NewPasswordResetUsecase(userRepo, otpStore, mailer)

	e := server.New(cfg, server.Handlers{
		Product:    handler.NewProductHandler(productUC),
		Review:     handler.NewReviewHandler(reviewUC),
		Cart:       handler.NewCartHandler(cartUC),
		Wishlist:   handler.NewWishlistHandler(wishlistUC),
		Checkout:   handler.NewCheckoutHandler(checkoutUC),
		Payment:    handler.NewPaymentHandler(paymentUC),
		Order:      handler.NewOrderHandler(orderUC),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC),
		Auth:       handler.NewAuthHandler(resetUC),
	})

	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
