package config

import (
	"flag"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress    = ":8080"
	DefaultAllowedOrigin = "*"
	DefaultDataDir       = "./data"
	DefaultSMTPPort      = 587
	DefaultMerchantVPA   = "shop@upi"
	DefaultMerchantName  = "Shopfront"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`
	DataDir       string `env:"DATA_DIR"`
	StrictStorage bool   `env:"STRICT_STORAGE"`

	SMTPHost   string `env:"SMTP_HOST"`
	SMTPPort   int    `env:"SMTP_PORT"`
	SMTPUser   string `env:"SMTP_USER"`
	SMTPPass   string `env:"SMTP_PASS"`
	AdminEmail string `env:"ADMIN_EMAIL"`

	OrderWebhookURL string `env:"ORDER_WEBHOOK_URL"`

	MerchantVPA  string `env:"UPI_MERCHANT_ID"`
	MerchantName string `env:"UPI_MERCHANT_NAME"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.AllowedOrigin, "o", DefaultAllowedOrigin, "Allowed CORS origin")
	flag.StringVar(&config.DataDir, "d", DefaultDataDir, "Directory for collection files")
	flag.BoolVar(&config.StrictStorage, "strict", false, "Surface storage failures instead of empty collections")

	flag.StringVar(&config.SMTPHost, "smtp-host", "", "SMTP host (empty disables email notifications)")
	flag.IntVar(&config.SMTPPort, "smtp-port", DefaultSMTPPort, "SMTP port")
	flag.StringVar(&config.SMTPUser, "smtp-user", "", "SMTP user")
	flag.StringVar(&config.SMTPPass, "smtp-pass", "", "SMTP password")
	flag.StringVar(&config.AdminEmail, "admin-email", "", "Admin notification address")

	flag.StringVar(&config.OrderWebhookURL, "webhook", "", "Order webhook URL (empty disables webhook notifications)")

	flag.StringVar(&config.MerchantVPA, "upi-id", DefaultMerchantVPA, "UPI merchant VPA")
	flag.StringVar(&config.MerchantName, "upi-name", DefaultMerchantName, "UPI merchant display name")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
