package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures process configuration. Values come from the environment so
// main stays lean; the DAO settings portion is captured once at bootstrap and
// retained read-only for the governance handoff.
type Config struct {
	Addr          string
	JWTSigningKey string

	// Deployer is the address that receives the temporary elevated roles at
	// bootstrap and hands them to the treasury at finalize.
	Deployer string

	PostgresURL string
	Redis       RedisConfig
	Kafka       KafkaConfig
	Throttle    ThrottleConfig

	Membership MembershipConfig
	Share      ShareConfig
	DAO        DAOSettings
}

// ThrottleConfig bounds claim attempts per caller. Only enforced when Redis
// is configured.
type ThrottleConfig struct {
	Limit  int64
	Window time.Duration
}

// RedisConfig controls the optional Redis-backed commitment cache and claim
// throttle. An empty URL disables both.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig controls the audit event stream. Empty brokers disable it.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// MembershipConfig parameterizes the membership token at bootstrap.
type MembershipConfig struct {
	Name    string
	Symbol  string
	BaseURI string
}

// ShareConfig parameterizes the equity token at bootstrap. Empty name or
// symbol derive from the membership token (name + " Shares", symbol + "-S").
type ShareConfig struct {
	Name   string
	Symbol string
}

// DAOSettings is the opaque settings snapshot consumed during handoff.
type DAOSettings struct {
	TimelockDelay        time.Duration
	InitialShareSupply   uint64
	InitialShareSplitBPS uint32 // basis points routed by the treasury's split policy
	TransferableIdentity bool

	// Investment terms the treasury is constructed with.
	InvestmentOpen  bool
	MinContribution uint64
	MaxContribution uint64
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:          envOr("SYNDICATE_ADDR", ":8080"),
		JWTSigningKey: envOr("SYNDICATE_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		Deployer:      envOr("SYNDICATE_DEPLOYER_ADDRESS", "0x00000000000000000000000000000000000000a1"),
		PostgresURL:   os.Getenv("SYNDICATE_POSTGRES_URL"),
		Throttle: ThrottleConfig{
			Limit:  int64(envInt("SYNDICATE_CLAIM_THROTTLE_LIMIT", 10)),
			Window: envDuration("SYNDICATE_CLAIM_THROTTLE_WINDOW", time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("SYNDICATE_REDIS_URL"),
			PoolSize:     envInt("SYNDICATE_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("SYNDICATE_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDuration("SYNDICATE_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("SYNDICATE_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("SYNDICATE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(os.Getenv("SYNDICATE_KAFKA_BROKERS")),
			Topic:   envOr("SYNDICATE_KAFKA_AUDIT_TOPIC", "syndicate.audit"),
		},
		Membership: MembershipConfig{
			Name:    envOr("SYNDICATE_MEMBERSHIP_NAME", "Syndicate Membership"),
			Symbol:  envOr("SYNDICATE_MEMBERSHIP_SYMBOL", "SYN"),
			BaseURI: envOr("SYNDICATE_MEMBERSHIP_BASE_URI", "https://members.syndicate.example/meta/"),
		},
		Share: ShareConfig{
			Name:   os.Getenv("SYNDICATE_SHARE_NAME"),
			Symbol: os.Getenv("SYNDICATE_SHARE_SYMBOL"),
		},
		DAO: DAOSettings{
			TimelockDelay:        envDuration("SYNDICATE_TIMELOCK_DELAY", 48*time.Hour),
			InitialShareSupply:   uint64(envInt("SYNDICATE_INITIAL_SHARE_SUPPLY", 0)),
			InitialShareSplitBPS: uint32(envInt("SYNDICATE_INITIAL_SHARE_SPLIT_BPS", 0)),
			TransferableIdentity: os.Getenv("SYNDICATE_TRANSFERABLE_IDENTITY") != "false",
			InvestmentOpen:       os.Getenv("SYNDICATE_INVESTMENT_OPEN") != "false",
			MinContribution:      uint64(envInt("SYNDICATE_MIN_CONTRIBUTION", 0)),
			MaxContribution:      uint64(envInt("SYNDICATE_MAX_CONTRIBUTION", 0)),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
