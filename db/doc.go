// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg) // "sqlite" (modernc.org/sqlite) or "postgres" (lib/pq)

sqlite connections get the foreign_keys pragma appended to the DSN so
ON DELETE CASCADE holds on every pooled connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - polls: poll metadata and lifecycle flags (active, closed)
  - questions: ordered questions per poll (single or multiple choice)
  - options: ordered options per question
  - votes: one row per option chosen, keyed by voter session ID

# Relationships

	polls 1──* questions 1──* options 1──* votes

All foreign keys use ON DELETE CASCADE; deleting a poll removes its
questions, options, and votes.

# Dialect Notes

The schema and all queries stick to the subset both drivers accept:
TEXT primary keys generated in the application, $N placeholders with
arguments in placeholder order, and CURRENT_TIMESTAMP defaults.
order_index is unique per parent and defines display order.
*/
package db
