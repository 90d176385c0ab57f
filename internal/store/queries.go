// SPDX-License-Identifier: Apache-2.0

package store

// sessionSchemaVersion is stored alongside the persisted session. Rows written
// by an incompatible schema are treated as absent on load.
const sessionSchemaVersion = 1

const (
	saveSession = `
		INSERT INTO session (
			id,
			schema_version,
			token,
			user_json,
			authenticated,
			updated_at
		) VALUES (1, $1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			schema_version = excluded.schema_version,
			token          = excluded.token,
			user_json      = excluded.user_json,
			authenticated  = excluded.authenticated,
			updated_at     = excluded.updated_at;`

	getSession = `
		SELECT
			schema_version,
			token,
			user_json,
			authenticated
		FROM session
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM session
		WHERE id = 1;`
)
