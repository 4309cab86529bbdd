package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Database struct {
		Host     string `yaml:"host" default:"localhost"`
		Port     int    `yaml:"port" default:"5432"`
		User     string `yaml:"user" default:"postgres"`
		Password string `yaml:"password"`
		Name     string `yaml:"name" default:"openhiring"`
		SSLMode  string `yaml:"ssl_mode" default:"disable"`
	} `yaml:"database"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Site struct {
		Name        string `yaml:"name" default:"OpenHiring"`
		Description string `yaml:"description" default:"Find your dream job"`
		BaseURL     string `yaml:"base_url" default:"http://localhost:8080"`
		JobsPerPage int    `yaml:"jobs_per_page" default:"10"`
	} `yaml:"site"`

	Uploads struct {
		LogoDir       string `yaml:"logo_dir" default:"assets/uploads/logos"`
		ResumeDir     string `yaml:"resume_dir" default:"assets/uploads/resumes"`
		MaxLogoSize   int64  `yaml:"max_logo_size" default:"1048576"`
		MaxResumeSize int64  `yaml:"max_resume_size" default:"2097152"`
	} `yaml:"uploads"`

	Mail struct {
		Enabled      bool   `yaml:"enabled" default:"true"`
		SMTPHost     string `yaml:"smtp_host" default:"localhost"`
		SMTPPort     int    `yaml:"smtp_port" default:"25"`
		Username     string `yaml:"username"`
		Password     string `yaml:"password"`
		AdminEmail   string `yaml:"admin_email" default:"admin@openhiring.local"`
		NoReplyEmail string `yaml:"noreply_email" default:"noreply@openhiring.local"`
		ContactEmail string `yaml:"contact_email" default:"contact@openhiring.local"`
	} `yaml:"mail"`

	Session struct {
		CookieName string        `yaml:"cookie_name" default:"openhiring_session"`
		TTL        time.Duration `yaml:"ttl" default:"24h"`
	} `yaml:"session"`

	RateLimit struct {
		SubmissionsPerMinute int `yaml:"submissions_per_minute" default:"6"`
		Burst                int `yaml:"burst" default:"3"`
	} `yaml:"rate_limit"`

	Admin struct {
		BootstrapUsername string `yaml:"bootstrap_username"`
		BootstrapPassword string `yaml:"bootstrap_password"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Database.Host = "localhost"
	config.Database.Port = 5432
	config.Database.User = "postgres"
	config.Database.Name = "openhiring"
	config.Database.SSLMode = "disable"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Site.Name = "OpenHiring"
	config.Site.Description = "Find your dream job"
	config.Site.BaseURL = "http://localhost:8080"
	config.Site.JobsPerPage = 10

	config.Uploads.LogoDir = "assets/uploads/logos"
	config.Uploads.ResumeDir = "assets/uploads/resumes"
	config.Uploads.MaxLogoSize = 1 << 20   // 1 MiB
	config.Uploads.MaxResumeSize = 2 << 20 // 2 MiB

	config.Mail.Enabled = true
	config.Mail.SMTPHost = "localhost"
	config.Mail.SMTPPort = 25
	config.Mail.AdminEmail = "admin@openhiring.local"
	config.Mail.NoReplyEmail = "noreply@openhiring.local"
	config.Mail.ContactEmail = "contact@openhiring.local"

	config.Session.CookieName = "openhiring_session"
	config.Session.TTL = 24 * time.Hour

	config.RateLimit.SubmissionsPerMinute = 6
	config.RateLimit.Burst = 3

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		c.Database.Host = dbHost
	}

	if dbPort := os.Getenv("DB_PORT"); dbPort != "" {
		if p, err := strconv.Atoi(dbPort); err == nil {
			c.Database.Port = p
		}
	}

	if dbUser := os.Getenv("DB_USER"); dbUser != "" {
		c.Database.User = dbUser
	}

	if dbPassword := os.Getenv("DB_PASSWORD"); dbPassword != "" {
		c.Database.Password = dbPassword
	}

	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		c.Database.Name = dbName
	}

	if sslMode := os.Getenv("DB_SSL_MODE"); sslMode != "" {
		c.Database.SSLMode = sslMode
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if baseURL := os.Getenv("SITE_BASE_URL"); baseURL != "" {
		c.Site.BaseURL = baseURL
	}

	if siteName := os.Getenv("SITE_NAME"); siteName != "" {
		c.Site.Name = siteName
	}

	if logoDir := os.Getenv("UPLOAD_LOGO_DIR"); logoDir != "" {
		c.Uploads.LogoDir = logoDir
	}

	if resumeDir := os.Getenv("UPLOAD_RESUME_DIR"); resumeDir != "" {
		c.Uploads.ResumeDir = resumeDir
	}

	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		c.Mail.SMTPHost = smtpHost
	}

	if smtpPort := os.Getenv("SMTP_PORT"); smtpPort != "" {
		if p, err := strconv.Atoi(smtpPort); err == nil {
			c.Mail.SMTPPort = p
		}
	}

	if smtpUser := os.Getenv("SMTP_USERNAME"); smtpUser != "" {
		c.Mail.Username = smtpUser
	}

	if smtpPassword := os.Getenv("SMTP_PASSWORD"); smtpPassword != "" {
		c.Mail.Password = smtpPassword
	}

	if mailEnabled := os.Getenv("MAIL_ENABLED"); mailEnabled != "" {
		c.Mail.Enabled = mailEnabled == "true" || mailEnabled == "1"
	}

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		c.Mail.AdminEmail = adminEmail
	}

	if bootstrapUser := os.Getenv("ADMIN_BOOTSTRAP_USERNAME"); bootstrapUser != "" {
		c.Admin.BootstrapUsername = bootstrapUser
	}

	if bootstrapPassword := os.Getenv("ADMIN_BOOTSTRAP_PASSWORD"); bootstrapPassword != "" {
		c.Admin.BootstrapPassword = bootstrapPassword
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}

// DSN builds the postgres connection string for the configured database.
func (c *Config) DSN() string {
	return "host=" + c.Database.Host +
		" user=" + c.Database.User +
		" password=" + c.Database.Password +
		" dbname=" + c.Database.Name +
		" port=" + strconv.Itoa(c.Database.Port) +
		" sslmode=" + c.Database.SSLMode
}
