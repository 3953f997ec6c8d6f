package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic grid seed for a date using
// HMAC(salt, YYYY-MM-DD): every player sees the same daily puzzle.
func Seed(date time.Time, salt string) int64 {
	sum := digest(date, salt)
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}

// ThemeIndex returns a deterministic theme pick for a date, taken from
// a different slice of the same digest so seed and theme vary
// independently.
func ThemeIndex(date time.Time, salt string, themeCount int) int {
	if themeCount <= 0 {
		return 0
	}
	sum := digest(date, salt)
	n := binary.BigEndian.Uint64(sum[8:16])
	return int(n % uint64(themeCount))
}

func digest(date time.Time, salt string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	return h.Sum(nil)
}
