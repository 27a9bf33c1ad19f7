// Package db ships the SQL schema inside the binary so deployments need no
// external migration files.
package db

import _ "embed"

// Schema is the full DDL for the shop's tables, applied by RunMigrations.
//
//go:embed migrations/001_schema.sql
var Schema string
