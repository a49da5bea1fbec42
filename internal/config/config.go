package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"300"` // 上传视频可能需要较长时间
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"300"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		MaxOpenConns       int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns       int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime        int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	InitialRestaurant struct {
		Username string `env:"USERNAME" envDefault:"demo"`
		Password string `env:"PASSWORD,required"`
		Name     string `env:"NAME" envDefault:"演示餐厅"`
		Email    string `env:"EMAIL,required"`
	} `envPrefix:"INITIAL_RESTAURANT_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"336"` // 14 天，单位为小时
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Seed struct {
		Restaurant struct {
			Password string `env:"PASSWORD,required"`
		} `envPrefix:"RESTAURANT_"`
	} `envPrefix:"SEED_"`
	Email struct {
		RestaurantDomain string `env:"RESTAURANT_DOMAIN,required"`
		SMTP             struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Redis struct {
		Host                string `env:"HOST" envDefault:"localhost"`
		Port                int    `env:"PORT" envDefault:"6379"`
		Password            string `env:"PASSWORD,required"`
		ConnectTimeout      int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		OperationExpiration int    `env:"OPERATION_EXPIRATION" envDefault:"10"`
	} `envPrefix:"REDIS_"`
	OTP struct {
		Expiration int `env:"EXPIRATION" envDefault:"900"` // 15 分钟
	} `envPrefix:"OTP_"`
	Storage struct {
		Provider      string `env:"PROVIDER" envDefault:"local"` // local 或 s3
		LocalRoot     string `env:"LOCAL_ROOT" envDefault:"./data/videos"`
		Bucket        string `env:"BUCKET" envDefault:"videos"`
		PublicBaseURL string `env:"PUBLIC_BASE_URL,required"`
		S3            struct {
			Endpoint  string `env:"ENDPOINT"`
			Region    string `env:"REGION" envDefault:"eu-north-1"`
			AccessKey string `env:"ACCESS_KEY"`
			SecretKey string `env:"SECRET_KEY"`
		} `envPrefix:"S3_"`
	} `envPrefix:"STORAGE_"`
	Upload struct {
		MaxSizeMB int `env:"MAX_SIZE_MB" envDefault:"200"`
	} `envPrefix:"UPLOAD_"`
	TV struct {
		BaseURL      string `env:"BASE_URL,required"`             // 电视页面的公开地址前缀，例如 https://tv.example.com
		PollInterval int    `env:"POLL_INTERVAL" envDefault:"60"` // 电视端轮询当前视频的间隔，单位为秒
	} `envPrefix:"TV_"`
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Stockholm"` // 排播使用的固定时区
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
