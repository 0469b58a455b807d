// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollcast server.

Pollcast is a live-polling web application: an admin panel creates
multi-question polls, participants vote from their phones via QR codes,
and poll closure is pushed to connected voting pages over WebSocket.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=polls.db ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 3000 -d polls.db -admin-password ...

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or postgres connection string
  - ADMIN_PASSWORD (-admin-password): admin panel password

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PUBLIC_DIR (-public-dir): static assets (default: ./public)
  - DATA_DIR (-data-dir): diff-viewer JSON documents, served under /data/
  - BASE_URL (-base-url): public URL embedded in QR codes

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (admin, voting, qr, websocket)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin password checking and ID generation
  - ws: Per-poll WebSocket rooms and broadcasting
  - db: Connection selection and schema creation
  - cliparse: Configuration parsing
  - diffdoc: Diff-viewer document model and generator (used by cmd/gendiff)

See package documentation for each component.
*/
package main
