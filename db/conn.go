// Package db opens the relational store and keeps the schema migrated
package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"notedeck/notes-api/model"
)

func New() (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	switch driver := viper.GetString("db.driver"); driver {
	case "sqlite":
		dsn := viper.GetString("db.dsn")

		// Inside a container the sqlite file should be mounted as a
		// volume instead of silently created on an ephemeral layer
		if runningInDocker() && !strings.Contains(dsn, "memory") {
			if _, statErr := os.Stat(dsn); os.IsNotExist(statErr) {
				return nil, fmt.Errorf("sqlite database file %q not mounted, use a docker volume", dsn)
			}
		}

		conn, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	case "postgres":
		conn, err = gorm.Open(postgres.Open(viper.GetString("db.dsn")), &gorm.Config{TranslateError: true})
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = conn.AutoMigrate(model.User{}, model.Folder{}, model.Note{}, model.Attachment{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return conn, nil
}

func runningInDocker() bool {
	_, err := os.Stat("/.dockerenv")
	return err == nil
}
