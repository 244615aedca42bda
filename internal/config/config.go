package config

import (
	"os"
	"strings"
)

// Setup 首次启动的初始化配置。四个变量必须全部提供才算配置了 setup，
// GetSite 据此决定是否执行引导（注册管理员 + 建站）。
type Setup struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	SiteName      string
}

type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	BannedTerms []string
	Setup       *Setup
}

// 默认违禁词表，可用 BANNED_TERMS 覆盖（逗号分隔）
var defaultBannedTerms = []string{
	"faggot", "nigger", "chink", "retard", "tranny", "spic", "kike",
}

// Load 从环境变量读取配置。调用方需先完成 godotenv.Load。
func Load() *Config {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BannedTerms: defaultBannedTerms,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "secret_key_change_me"
	}

	if terms := os.Getenv("BANNED_TERMS"); terms != "" {
		cfg.BannedTerms = nil
		for _, t := range strings.Split(terms, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.BannedTerms = append(cfg.BannedTerms, t)
			}
		}
	}

	// setup 四项齐全才启用引导
	setup := Setup{
		AdminUsername: os.Getenv("SETUP_ADMIN_USERNAME"),
		AdminEmail:    os.Getenv("SETUP_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("SETUP_ADMIN_PASSWORD"),
		SiteName:      os.Getenv("SETUP_SITE_NAME"),
	}
	if setup.AdminUsername != "" && setup.AdminEmail != "" &&
		setup.AdminPassword != "" && setup.SiteName != "" {
		cfg.Setup = &setup
	}

	return cfg
}
