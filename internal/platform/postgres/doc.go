// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles the details of query execution, error mapping and data mapping
// between domain entities and database records, and it embeds the goose
// migrations that create and seed the schema.
package postgres
