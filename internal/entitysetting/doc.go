// Package entitysetting resolves which settings apply to an entity type and
// which stored settings row is effective for it.
//
// Lookups go through two tables with different inheritance rules. The catalog
// of available setting keys falls back to the abstract domain object entry for
// domain objects only. The stored rows read from the cache fall back to the
// abstract core relationship and cyber observable rows only. Both rules are
// kept as they are; they are not meant to agree.
package entitysetting
