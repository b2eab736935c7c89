// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides map admin keys, share slugs and ID generation.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(mapID, salt)
	err := auth.AuthorizeEdit(mapID, r.Header.Get(auth.AdminKeyHeader), salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same map ID and salt always produce the same key, so nothing has to be
stored to validate it.

# Share Slugs

Share slugs create URL-friendly identifiers for published result snapshots:

	slug := auth.GenerateShareSlug(snapshotID, salt)

Slugs are base62 encoded (alphanumeric only) for easy sharing.

# ID Generation

Random hex IDs for maps and snapshots:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
