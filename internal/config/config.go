package config

import "os"

type Config struct {
	Port        string
	DataFile    string
	CORSOrigins string
}

// Load reads configuration from the environment with local-development
// defaults. The data file is the single workbook every table lives in.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8000"),
		DataFile:    getEnv("POS_DATA_FILE", "hardware_pos_data.xlsx"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
