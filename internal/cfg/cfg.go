package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

const (
	LogoSourceFile  = "file"
	LogoSourceMinio = "minio"
)

type Config struct {
	Http    *HTTPConfig
	Printer *PrinterCfg
	Logo    *LogoCfg
	Receipt *ReceiptCfg
	Payload *PayloadCfg
	Minio   *MinIOCfg
	Redis   *RedisCfg
	Db      *PGDBCfg
	Kafka   *KafkaCfg
	Kiosk   *KioskCfg
	Sound   *SoundCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PrinterCfg — сетевой ESC/POS принтер.
type PrinterCfg struct {
	Addr          string
	NetworkMode   string
	DialTimeout   time.Duration
	WriteTimeout  time.Duration
	ReconnectBase time.Duration // Первая задержка переподключения
	ReconnectMax  time.Duration // Потолок задержки переподключения
	PaperWidthPx  int           // Ширина печатной области в точках
}

type LogoCfg struct {
	Source    string // file | minio
	Path      string // Путь к файлу логотипа. При Source=minio файл загружается в бакет при старте
	ObjectKey string
}

type ReceiptCfg struct {
	Location string // IANA-зона для времени на чеке
}

type PayloadCfg struct {
	SchemaMode string
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Название бакета с ассетами киоска
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
}

type RedisCfg struct {
	Addr         string
	Password     string
	User         string
	DB           int
	MaxRetries   int
	DialTimeout  time.Duration
	Timeout      time.Duration
	JobResultTTL time.Duration // Время жизни журнала ответов принтера
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
	Async             bool
	EnsureTimeout     time.Duration
}

type KioskCfg struct {
	DashboardURL         string
	Email                string
	Password             string
	ConnectivityInterval time.Duration
	ConnectivityFailures int
}

type SoundCfg struct {
	Command string
	Timeout time.Duration
}

// Load загружает .env (если есть) и переменные окружения. Возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to load .env: %v", err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	printer, err := loadPrinterCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logo, err := loadLogoCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kiosk, err := loadKioskCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	sound, err := loadSoundCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Printer: printer,
		Logo:    logo,
		Receipt: &ReceiptCfg{Location: getEnvOrDefault("RECEIPT_TIMEZONE", "Europe/Brussels")},
		Payload: &PayloadCfg{SchemaMode: getEnvOrDefault("PAYLOAD_SCHEMA", "auto")},
		Minio:   minio,
		Redis:   redis,
		Db:      db,
		Kafka:   kafka,
		Kiosk:   kiosk,
		Sound:   sound,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPrinterCfg(log logger.Logger) (*PrinterCfg, error) {
	const (
		defaultNetworkMode   = "tcp"
		defaultDialTimeout   = 3 * time.Second
		defaultWriteTimeout  = 5 * time.Second
		defaultReconnectBase = 500 * time.Millisecond
		defaultReconnectMax  = 30 * time.Second
		defaultPaperWidthPx  = 384
	)

	addr := getEnv("PRINTER_ADDR")
	if addr == "" {
		return nil, e.Wrap("PRINTER_ADDR", e.ErrRequiredEnvVariable)
	}

	dialTimeout, err := parseDurationEnv("PRINTER_DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid PRINTER_DIAL_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("PRINTER_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid PRINTER_WRITE_TIMEOUT")
		return nil, err
	}

	reconnectBase, err := parseDurationEnv("PRINTER_RECONNECT_BASE", defaultReconnectBase)
	if err != nil {
		log.Errorf(err, "invalid PRINTER_RECONNECT_BASE")
		return nil, err
	}

	reconnectMax, err := parseDurationEnv("PRINTER_RECONNECT_MAX", defaultReconnectMax)
	if err != nil {
		log.Errorf(err, "invalid PRINTER_RECONNECT_MAX")
		return nil, err
	}

	paperWidth, err := parseIntEnv("PRINTER_PAPER_WIDTH_PX", defaultPaperWidthPx)
	if err != nil {
		return nil, e.Wrap("PRINTER_PAPER_WIDTH_PX", err)
	}

	return &PrinterCfg{
		Addr:          addr,
		NetworkMode:   getEnvOrDefault("PRINTER_NETWORK_MODE", defaultNetworkMode),
		DialTimeout:   dialTimeout,
		WriteTimeout:  writeTimeout,
		ReconnectBase: reconnectBase,
		ReconnectMax:  reconnectMax,
		PaperWidthPx:  paperWidth,
	}, nil
}

func loadLogoCfg() (*LogoCfg, error) {
	const defaultObjectKey = "logo.png"

	source := strings.ToLower(getEnvOrDefault("LOGO_SOURCE", LogoSourceFile))
	if source != LogoSourceFile && source != LogoSourceMinio {
		return nil, e.Wrap("LOGO_SOURCE", e.ErrIncorrectEnvVariable)
	}

	return &LogoCfg{
		Source:    source,
		Path:      getEnv("LOGO_PATH"),
		ObjectKey: getEnvOrDefault("LOGO_OBJECT_KEY", defaultObjectKey),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	useSSL, err := parseBoolEnv("MINIO_USE_SSL", defaultUseSSL)
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        getEnvOrDefault("BUCKET_NAME", "kiosk-assets"),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultJobResultTTL = 24 * time.Hour
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	jobResultTTL, err := parseDurationEnv("JOB_RESULT_TTL", defaultJobResultTTL)
	if err != nil {
		log.Errorf(err, "invalid JOB_RESULT_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:         getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:     getEnv("REDIS_PASSWORD"),
		User:         getEnv("REDIS_USER"),
		DB:           db,
		MaxRetries:   maxRetries,
		DialTimeout:  dialTimeout,
		Timeout:      timeout,
		JobResultTTL: jobResultTTL,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:     getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:     getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  getEnvOrDefault("SSL_MODE", defaultSSLMode),
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultAsync             = true
		defaultEnsureTimeout     = 10 * time.Second
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}
	brokers := strings.Split(brokerStr, ",")

	topic := getEnvOrDefault("KAFKA_TOPIC", "kiosk.print-jobs")

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	async, err := parseBoolEnv("KAFKA_ASYNC", defaultAsync)
	if err != nil {
		return nil, e.Wrap("KAFKA_ASYNC", err)
	}

	ensureTimeout, err := parseDurationEnv("KAFKA_ENSURE_TIMEOUT", defaultEnsureTimeout)
	if err != nil {
		return nil, e.Wrap("KAFKA_ENSURE_TIMEOUT", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             topic,
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
		Async:             async,
		EnsureTimeout:     ensureTimeout,
	}, nil
}

func loadKioskCfg() (*KioskCfg, error) {
	const (
		defaultDashboardURL         = "https://admin.nuagemagique.dev/orders"
		defaultConnectivityInterval = 5 * time.Second
		defaultConnectivityFailures = 3
	)

	interval, err := parseDurationEnv("CONNECTIVITY_INTERVAL", defaultConnectivityInterval)
	if err != nil {
		return nil, e.Wrap("CONNECTIVITY_INTERVAL", err)
	}

	failures, err := parseIntEnv("CONNECTIVITY_FAILURES", defaultConnectivityFailures)
	if err != nil {
		return nil, e.Wrap("CONNECTIVITY_FAILURES", err)
	}

	return &KioskCfg{
		DashboardURL:         getEnvOrDefault("DASHBOARD_URL", defaultDashboardURL),
		Email:                getEnv("KIOSK_EMAIL"),
		Password:             getEnv("KIOSK_PASSWORD"),
		ConnectivityInterval: interval,
		ConnectivityFailures: failures,
	}, nil
}

func loadSoundCfg() (*SoundCfg, error) {
	const (
		defaultCommand = "paplay /usr/share/sounds/freedesktop/stereo/message.oga"
		defaultTimeout = 10 * time.Second
	)

	timeout, err := parseDurationEnv("SOUND_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, e.Wrap("SOUND_TIMEOUT", err)
	}

	return &SoundCfg{
		Command: getEnvOrDefault("SOUND_COMMAND", defaultCommand),
		Timeout: timeout,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return boolValue, nil
}
