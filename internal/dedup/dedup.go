package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go-posting-cleaner/internal/models"

	"github.com/rs/zerolog/log"
)

const cacheFile = "seen_postings.json"

type seenEntry struct {
	Fingerprint string `json:"fingerprint"`
	Timestamp   int64  `json:"timestamp"`
}

// PostingCache remembers which postings were already announced
type PostingCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	now      func() time.Time
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewPostingCache creates or loads a posting cache stored in cacheDir
func NewPostingCache(cacheDir string) *PostingCache {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to create cache directory")
	}
	cache := &PostingCache{
		filePath: filepath.Join(cacheDir, cacheFile),
		seen:     make(map[string]int64),
		now:      time.Now,
	}
	cache.load()
	return cache
}

// Fingerprint identifies a posting by its extracted fields, so cosmetic
// changes to the raw text (emoji, spacing) map to the same key.
func Fingerprint(rec models.PostingRecord) string {
	parts := []string{rec.Company, rec.Email, rec.Deadline}
	parts = append(parts, rec.Requirements...)
	if rec.HasTestimonial() {
		parts = append(parts, *rec.Testimonial)
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// IsSeen checks if a fingerprint has already been announced
func (pc *PostingCache) IsSeen(fingerprint string) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	_, exists := pc.seen[fingerprint]
	return exists
}

func (pc *PostingCache) Add(fingerprints ...string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.now().UnixMilli()
	changed := false
	for _, fp := range fingerprints {
		if _, exists := pc.seen[fp]; !exists {
			pc.seen[fp] = now
			changed = true
		}
	}

	if changed {
		pc.save()
	}
}

// load reads the cache from disk, dropping entries older than thirty days
func (pc *PostingCache) load() {
	data, err := os.ReadFile(pc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msgf("⚠️ Failed to read %s", cacheFile)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Msgf("⚠️ Failed to parse %s", cacheFile)
		return
	}

	cutoff := pc.now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			pc.seen[e.Fingerprint] = e.Timestamp
			loaded++
		}
	}
	log.Debug().Msgf("📋 Loaded %d previously seen postings (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk, caller holds mu
func (pc *PostingCache) save() {
	entries := make([]seenEntry, 0, len(pc.seen))
	for fp, ts := range pc.seen {
		entries = append(entries, seenEntry{Fingerprint: fp, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to marshal seen postings")
		return
	}
	if err := os.WriteFile(pc.filePath, data, 0o644); err != nil {
		log.Warn().Err(err).Msgf("⚠️ Failed to write %s", cacheFile)
		return
	}
	log.Debug().Msgf("💾 Saved %d seen postings to cache", len(entries))
}
