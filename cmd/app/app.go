package app

import (
	"log"

	"comitefd/internal/config"
	"comitefd/internal/database"
	"comitefd/internal/mailer"
	"comitefd/internal/repository"
	"comitefd/internal/service"
	"comitefd/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// the image host and mail provider stay nil when unconfigured;
	// the services answer ServiceUnavailable instead
	var store storage.Storage
	if cfg.MinIO.SecretKey != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("could not initialize MinIO: %v", err)
		}
		store = minioClient
	} else {
		log.Println("Warning: MINIO_SECRET_KEY not set, uploads disabled")
	}

	var mail mailer.Mailer
	if cfg.Mail.APIKey != "" {
		mail = mailer.NewResendMailer(cfg)
	} else {
		log.Println("Warning: RESEND_API_KEY not set, contact form disabled")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store, mail)

	return db, repo, services
}
