package persistence

import (
	"database/sql"
	"errors"
	"os"

	"github.com/go-sql-driver/mysql"
)

type DatabaseConfig struct {
	DriverType string
	DriverArgs string
}

// ParseDatabaseConfigFromEnv reads DATABASE_DRIVER (default mysql) and
// DATABASE_URL (a driver DSN, required).
func ParseDatabaseConfigFromEnv() (*DatabaseConfig, error) {
	driver := os.Getenv("DATABASE_DRIVER")
	if driver == "" {
		driver = "mysql"
	}
	driverArgs := os.Getenv("DATABASE_URL")
	if driverArgs == "" {
		return nil, errors.New("environment variable DATABASE_URL is required")
	}
	return &DatabaseConfig{DriverType: driver, DriverArgs: driverArgs}, nil
}

// PrepareMysqlDatabase creates the database named in driverArgs when absent.
func PrepareMysqlDatabase(driverArgs string) error {
	dsnConfig, err := mysql.ParseDSN(driverArgs)
	if err != nil {
		return err
	}
	databaseName := dsnConfig.DBName
	dsnConfig.DBName = ""

	conn, err := sql.Open("mysql", dsnConfig.FormatDSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Exec("CREATE DATABASE IF NOT EXISTS " + databaseName + " CHARACTER SET utf8mb4")
	return err
}
