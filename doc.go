// Package auth is the authentication and role-gated access core of the clinic
// admin API: credential registration, login, stateless JWT issuance and
// verification, and the composed request gate every protected route runs
// through.
//
// The pieces compose in one direction only:
//   - Admins repository looks accounts up by email and persists new ones.
//   - AdminProvider verifies credentials against the stored bcrypt hash and
//     returns an Identity; unknown email and wrong password are
//     indistinguishable to callers.
//   - TokenService signs Identity claims into a JWT and validates inbound
//     tokens. Expiry is configuration; by default tokens carry no exp claim.
//   - middleware/jwtware extracts, validates, and role-checks tokens in a
//     single pipeline stage, then stashes the claims for handlers.
//
// Registration and login are plain sequential flows (validate, look up, hash
// or compare, persist or sign); there is no session state on the server side.
package auth
