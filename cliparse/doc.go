// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminPassword: Admin panel password (required)
  - PublicDir: Static asset directory (default: ./public)
  - DataDir: Diff-viewer data directory (optional; /data/ disabled when empty)
  - BaseURL: Public base URL embedded in QR codes (default: http://localhost:<port>)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-admin-password Admin password
	-public-dir     Static asset directory
	-data-dir       Diff-viewer data directory
	-base-url       Public base URL

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_PASSWORD → -admin-password
	PUBLIC_DIR     → -public-dir
	DATA_DIR       → -data-dir
	BASE_URL       → -base-url

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_PASSWORD must be provided
  - DATABASE_TYPE, when set, must be sqlite or postgres

The admin password is never stored outside the returned Config; handlers
receive it by value rather than reading a package-level secret.
*/
package cliparse
