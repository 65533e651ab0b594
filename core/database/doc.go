// Package database handles database connections.
//
// It provides a wrapper around GORM that configures the MySQL connection
// (pool sizes, timeouts, DSN encoding) from the application's configuration.
// A sqlite driver is supported for tests, which connect to ":memory:".
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
