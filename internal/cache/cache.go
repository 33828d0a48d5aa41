// Package cache provides the advisory key-value caches used by the
// compliance orchestrator: compiled rule sets and full compliance results.
// Both are rebuildable from the brand snapshot and never the system of record.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the key-value cache injected into the orchestrator. An
// in-memory map implementation suffices in tests.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	Clear()
}

// ContentHash returns a stable hash for a piece of content.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// RuleSetKey builds the cache key for a brand's compiled rule set.
func RuleSetKey(brandID, guidelineVersion string) string {
	return "brandguard:rules:" + brandID + ":" + guidelineVersion
}

// ResultKey builds the cache key for a full compliance result.
func ResultKey(guidelineVersion, contentHash, configHash string) string {
	return "brandguard:result:" + guidelineVersion + ":" + contentHash + ":" + configHash
}
