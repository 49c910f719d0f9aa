/*
Package cliparse handles configuration parsing for the feature voting server.

Configuration is resolved in priority order:

 1. CLI flags (-p, -d, -t, -secret)
 2. Environment variables (PORT, DATABASE_URL, DATABASE_TYPE, SECRET_KEY)
 3. Hardcoded development defaults

The development defaults point at a local Postgres instance
(feature_voting database) with a placeholder secret key, so the server
starts with zero configuration on a dev machine. Production deployments
must override DATABASE_URL and SECRET_KEY.

Supported database types are "postgres" (lib/pq) and "sqlite"
(modernc.org/sqlite); the DATABASE_URL is a DSN for the former and a
file path for the latter.
*/
package cliparse
