// Package auth implements user accounts for the API.
//
// Registration stores a bcrypt hash of the password; login verifies it and
// issues an HS256 JWT whose lifetime comes from the server configuration.
// The /me routes are protected by the bearer-token middleware, and the
// avatar endpoint stores uploads in object storage before recording the
// public URL on the user row.
package auth
