package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	attendance "hrdesk.co.kr/hrdesk/attendance/core"
	attendancehandlers "hrdesk.co.kr/hrdesk/attendance/web/handlers"
	"hrdesk.co.kr/hrdesk/config"
	"hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/distance"
	"hrdesk.co.kr/hrdesk/expense"
	"hrdesk.co.kr/hrdesk/infrastructure/communication"
	"hrdesk.co.kr/hrdesk/infrastructure/filesystem"
	kakao "hrdesk.co.kr/hrdesk/kakao/v1"
	"hrdesk.co.kr/hrdesk/web/handlers/admin"
	"hrdesk.co.kr/hrdesk/web/handlers/auth"
	expensehandlers "hrdesk.co.kr/hrdesk/web/handlers/expense"
	"hrdesk.co.kr/hrdesk/web/handlers/trips"
	"hrdesk.co.kr/hrdesk/web/middlewares"
)

func main() {
	configPath := flag.String("config", os.Getenv("HRDESK_CONFIG"), "path to a YAML config file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("using data dir: %s\n", cfg.DataDir)

	store, err := core.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	directory := core.NewDirectory(store)

	kakaoClient := kakao.NewKakaoClient(cfg.Kakao.LocalURL, cfg.Kakao.MobilityURL, cfg.Kakao.APIKey, cfg.Kakao.Timeout)
	distanceService := distance.NewKakaoService(kakaoClient)

	var options []expense.Option
	var reports admin.ReportLister
	if cfg.Expense.TemplateBucket != "" {
		bucket, err := filesystem.NewBucket(ctx, cfg.Expense.TemplateBucket)
		if err != nil {
			log.Fatal(err)
		}
		options = append(options, expense.WithTemplateBucket(bucket))
	}
	if cfg.Expense.ArchiveBucket != "" {
		bucket, err := filesystem.NewBucket(ctx, cfg.Expense.ArchiveBucket)
		if err != nil {
			log.Fatal(err)
		}
		options = append(options, expense.WithArchive(bucket))
		reports = bucket
	}
	if cfg.Expense.MailSender != "" {
		mailer, err := communication.NewMailer(ctx)
		if err != nil {
			log.Fatal(err)
		}
		options = append(options, expense.WithMailer(mailer, cfg.Expense.MailSender, directory))
	}
	generator := expense.NewGenerator(distanceService, cfg.Expense.TemplatePath, cfg.Expense.OutputDir, options...)

	slack := communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
		InfoChannelID:  cfg.Slack.InfoChannelID,
		ErrorChannelID: cfg.Slack.ErrorChannelID,
	})

	secret := []byte(cfg.Session.SecretKey)

	r := gin.Default()
	r.Use(middlewares.RequestID(), middlewares.CORS(cfg.Server.AllowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	public := r.Group("/")
	protected := r.Group("/", middlewares.Authentication(secret))
	administration := protected.Group("/", middlewares.RequireAdmin())

	auth.Register(public, protected, directory, secret, cfg.Session.TTL)
	trips.Register(protected, store, distanceService)
	expensehandlers.Register(protected, generator)
	admin.Register(administration, store, directory, reports)
	attendancehandlers.Register(administration, attendance.NewService(store, directory))

	if err := slack.Info(fmt.Sprintf("hrdesk started on %s", cfg.Server.Addr)); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
	}

	if err := r.Run(cfg.Server.Addr); err != nil {
		_ = slack.Error(fmt.Sprintf("hrdesk stopped: %v", err))
		log.Fatal(err)
	}
}
