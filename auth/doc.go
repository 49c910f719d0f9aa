/*
Package auth provides password hashing for user registration.

Passwords are hashed with bcrypt before storage; the plaintext is never
persisted. There is no login or session flow in this API - CheckPassword
exists for verification and tests.
*/
package auth
