package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OfferCleanupInterval time.Duration
	}

	Dispatch struct {
		AutoAssignRadiusKm float64
		BroadcastRadiusKm  float64
		LocationStaleness  time.Duration
		OfferTTL           time.Duration
	}

	Earnings struct {
		BaseFee          float64
		PerKmRate        float64
		EveningStartHour int
		EveningEndHour   int
		EveningBonusRate float64
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		Topic              string
		ConsumerGroup      string
		NotificationsTopic string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Dispatch Dispatch
		Earnings Earnings
		Server   HTTPServer
		Database Database
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	offerCleanupInterval, err := osGetEnvDuration("BACKGROUND_OFFER_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoAssignRadius, err := osGetFloat("DISPATCH_AUTO_ASSIGN_RADIUS_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	broadcastRadius, err := osGetFloat("DISPATCH_BROADCAST_RADIUS_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	locationStaleness, err := osGetEnvDuration("DISPATCH_LOCATION_STALENESS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	offerTTL, err := osGetEnvDuration("DISPATCH_OFFER_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	earningsBaseFee, err := osGetFloat("EARNINGS_BASE_FEE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	earningsPerKmRate, err := osGetFloat("EARNINGS_PER_KM_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	earningsEveningStartHour, err := osGetInt("EARNINGS_EVENING_START_HOUR")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	earningsEveningEndHour, err := osGetInt("EARNINGS_EVENING_END_HOUR")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	earningsEveningBonusRate, err := osGetFloat("EARNINGS_EVENING_BONUS_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OfferCleanupInterval: offerCleanupInterval,
		},
		Dispatch: Dispatch{
			AutoAssignRadiusKm: autoAssignRadius,
			BroadcastRadiusKm:  broadcastRadius,
			LocationStaleness:  locationStaleness,
			OfferTTL:           offerTTL,
		},
		Earnings: Earnings{
			BaseFee:          earningsBaseFee,
			PerKmRate:        earningsPerKmRate,
			EveningStartHour: earningsEveningStartHour,
			EveningEndHour:   earningsEveningEndHour,
			EveningBonusRate: earningsEveningBonusRate,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			Topic:              os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			NotificationsTopic: os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.OfferCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OFFER_CLEANUP_INTERVAL is required")
	}

	if cfg.Dispatch.AutoAssignRadiusKm <= 0 {
		return errors.New("DISPATCH_AUTO_ASSIGN_RADIUS_KM is required")
	}
	if cfg.Dispatch.BroadcastRadiusKm <= 0 {
		return errors.New("DISPATCH_BROADCAST_RADIUS_KM is required")
	}
	if cfg.Dispatch.LocationStaleness == time.Duration(0) {
		return errors.New("DISPATCH_LOCATION_STALENESS is required")
	}
	if cfg.Dispatch.OfferTTL == time.Duration(0) {
		return errors.New("DISPATCH_OFFER_TTL is required")
	}

	if cfg.Earnings.BaseFee <= 0 {
		return errors.New("EARNINGS_BASE_FEE is required")
	}
	if cfg.Earnings.PerKmRate <= 0 {
		return errors.New("EARNINGS_PER_KM_RATE is required")
	}
	if cfg.Earnings.EveningStartHour < 0 || cfg.Earnings.EveningStartHour > 23 {
		return errors.New("EARNINGS_EVENING_START_HOUR must be an hour in 0..23")
	}
	if cfg.Earnings.EveningEndHour < cfg.Earnings.EveningStartHour || cfg.Earnings.EveningEndHour > 23 {
		return errors.New("EARNINGS_EVENING_END_HOUR must be an hour in EARNINGS_EVENING_START_HOUR..23")
	}
	if cfg.Earnings.EveningBonusRate < 0 {
		return errors.New("EARNINGS_EVENING_BONUS_RATE must not be negative")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.NotificationsTopic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
