package model

// PgSchema is a name of the Postgres schema the application works with.
type PgSchema string
