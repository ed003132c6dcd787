// Package cache keeps the entity setting rows of the database in memory.
//
// Rows are loaded per tag on the first read and kept until the configured TTL
// expires or a write invalidates the tag. Concurrent misses of the same tag
// share one database read.
package cache
