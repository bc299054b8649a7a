package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getenv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

// GetDB abre a conexão Postgres a partir das variáveis de ambiente.
// DATABASE_URL tem precedência sobre as variáveis PG* individuais.
func GetDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USERNAME", "postgres"),
			getenv("DB_PASSWORD", "postgres"),
			getenv("DB_NAME", "comissoes"),
			getenv("DB_PORT", "5432"),
			getenv("DB_SSL_MODE", "disable"),
		)
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
