package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, broker address,
//   DB connection, etc.), security settings
// - default: Values common across all environments (topic names, timeouts,
//   simulation knobs), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	Consul    ConsulConfig
	DB        DBConfig
	PubSub    PubSubConfig
	MakeLine  MakeLineConfig
	Loyalty   LoyaltyConfig
	Worker    WorkerConfig
	Customers CustomersConfig
	Receipt   ReceiptConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Address other services reach this instance at, used for service
	// registration.
	AdvertiseHost string `envconfig:"ADVERTISE_HOST" default:"127.0.0.1"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type AMQPConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     int    `envconfig:"AMQP_PORT" default:"5672"`
	User     string `envconfig:"AMQP_USER" required:"true"`
	Password string `envconfig:"AMQP_PASSWORD" required:"true"`
}

type ConsulConfig struct {
	Address string `envconfig:"CONSUL_ADDRESS" default:"localhost:8500"`
}

type DBConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" required:"true"`
	PasswordSecret string `envconfig:"DB_PASSWORD_SECRET" default:"reddog-sql-password"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type PubSubConfig struct {
	Name                string `envconfig:"PUBSUB_NAME" default:"reddog.pubsub"`
	OrderTopic          string `envconfig:"ORDER_TOPIC" default:"orders"`
	OrderCompletedTopic string `envconfig:"ORDER_COMPLETED_TOPIC" default:"ordercompleted"`
}

type MakeLineConfig struct {
	StateStoreName string `envconfig:"MAKELINE_STATE_STORE" default:"reddog.state.makeline"`
	// 0 keeps the reference behavior of retrying a conflicted write forever.
	MaxWriteAttempts int `envconfig:"MAKELINE_MAX_WRITE_ATTEMPTS" default:"0"`
}

type LoyaltyConfig struct {
	StateStoreName   string `envconfig:"LOYALTY_STATE_STORE" default:"reddog.state.loyalty"`
	MaxWriteAttempts int    `envconfig:"LOYALTY_MAX_WRITE_ATTEMPTS" default:"0"`
}

type WorkerConfig struct {
	MakeLineAppID            string        `envconfig:"MAKELINE_APP_ID" default:"make-line-service"`
	StoreID                  string        `envconfig:"WORKER_STORE_ID" default:"Redmond"`
	MinSecondsToCompleteItem int           `envconfig:"WORKER_MIN_SECONDS_PER_ITEM" default:"1"`
	MaxSecondsToCompleteItem int           `envconfig:"WORKER_MAX_SECONDS_PER_ITEM" default:"5"`
	Interval                 time.Duration `envconfig:"WORKER_INTERVAL" default:"30s"`
}

type CustomersConfig struct {
	OrderServiceAppID       string `envconfig:"ORDER_SERVICE_APP_ID" default:"order-service"`
	StoreID                 string `envconfig:"CUSTOMERS_STORE_ID" default:"Redmond"`
	NumOrders               int    `envconfig:"CUSTOMERS_NUM_ORDERS" default:"-1"`
	MaxUniqueItemsPerOrder  int    `envconfig:"CUSTOMERS_MAX_UNIQUE_ITEMS" default:"4"`
	MaxItemQuantity         int    `envconfig:"CUSTOMERS_MAX_ITEM_QUANTITY" default:"3"`
	MinSecondsBetweenOrders int    `envconfig:"CUSTOMERS_MIN_SECONDS_BETWEEN_ORDERS" default:"2"`
	MaxSecondsBetweenOrders int    `envconfig:"CUSTOMERS_MAX_SECONDS_BETWEEN_ORDERS" default:"8"`
}

type ReceiptConfig struct {
	BindingName string `envconfig:"RECEIPT_BINDING_NAME" default:"reddog.binding.receipt"`
	Directory   string `envconfig:"RECEIPT_DIRECTORY" default:"/tmp/reddog-receipts"`
}

func (c *DBConfig) BuildDSN(password string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *AMQPConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.User, c.Password, c.Host, c.Port)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Worker.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Customers.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *WorkerConfig) Validate() error {
	if c.MinSecondsToCompleteItem < 1 || c.MaxSecondsToCompleteItem < c.MinSecondsToCompleteItem {
		return fmt.Errorf("invalid worker item completion bounds: min=%d max=%d", c.MinSecondsToCompleteItem, c.MaxSecondsToCompleteItem)
	}
	return nil
}

func (c *CustomersConfig) Validate() error {
	if c.MaxUniqueItemsPerOrder < 1 || c.MaxItemQuantity < 1 {
		return fmt.Errorf("invalid customer order bounds: uniqueItems=%d quantity=%d", c.MaxUniqueItemsPerOrder, c.MaxItemQuantity)
	}
	if c.MinSecondsBetweenOrders < 0 || c.MaxSecondsBetweenOrders < c.MinSecondsBetweenOrders {
		return fmt.Errorf("invalid customer pacing bounds: min=%d max=%d", c.MinSecondsBetweenOrders, c.MaxSecondsBetweenOrders)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZone:       "UTC",
			TimeZoneOffset: 0,
		},
		PubSub: PubSubConfig{
			Name:                "reddog.pubsub",
			OrderTopic:          "orders",
			OrderCompletedTopic: "ordercompleted",
		},
		MakeLine: MakeLineConfig{
			StateStoreName: "reddog.state.makeline",
		},
		Loyalty: LoyaltyConfig{
			StateStoreName: "reddog.state.loyalty",
		},
		Worker: WorkerConfig{
			MakeLineAppID:            "make-line-service",
			StoreID:                  "Redmond",
			MinSecondsToCompleteItem: 1,
			MaxSecondsToCompleteItem: 1,
			Interval:                 time.Second,
		},
		Customers: CustomersConfig{
			OrderServiceAppID:       "order-service",
			StoreID:                 "Redmond",
			NumOrders:               3,
			MaxUniqueItemsPerOrder:  2,
			MaxItemQuantity:         2,
			MinSecondsBetweenOrders: 0,
			MaxSecondsBetweenOrders: 0,
		},
		Receipt: ReceiptConfig{
			BindingName: "reddog.binding.receipt",
			Directory:   "/tmp/reddog-receipts-test",
		},
	}
}
