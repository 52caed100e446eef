package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"taskhub/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	driver, dsn, err := dataSource(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// A single writer avoids "database is locked" on the embedded engine.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

func dataSource(conf *config.Config) (string, string, error) {
	switch conf.DbDriver {
	case DriverMySQL, "":
		params := conf.DbParams
		if params == "" {
			params = "parseTime=true&clientFoundRows=true"
		}
		return DriverMySQL, fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	case DriverPostgres:
		params := conf.DbParams
		if params == "" {
			params = "sslmode=disable"
		}
		return DriverPostgres, fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	case DriverSQLite:
		return DriverSQLite, SQLiteDSN(conf.SQLitePath), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

// SQLiteDSN enables foreign keys and stores timestamps in a sortable layout.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_time_format=sqlite", path)
}
