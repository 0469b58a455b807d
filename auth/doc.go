// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin credential checking and identifier generation.

# Admin Password

Every admin request carries the plaintext password; a Validator holds the
configured secret and compares in constant time:

	v := auth.NewValidator(cfg.AdminPassword)
	if err := v.Check(req.Password); err != nil {
		// unauthorized
	}

The secret is passed in explicitly rather than read from a module-level
variable, so tests and multiple server instances can each carry their own.
No hashing, rate limiting, or token issuance is layered on top; each call
re-authenticates independently.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# Session IDs

Voter sessions are identified by UUIDs:

	sid := auth.GenerateSessionID()

A session may vote any number of times; participant counts deduplicate by
session ID.
*/
package auth
