package store

// Prepared query texts for the users table. Ordinal $N placeholders are
// understood by both the pgx and go-sqlite3 drivers.
const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id;`

	findUserByUsername = `SELECT id, username, password_hash
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash
    FROM users
    WHERE id = $1;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $1
    WHERE id = $2;`

	updateUsername = `UPDATE users
    SET username = $1
    WHERE id = $2;`
)
