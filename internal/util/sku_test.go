package util

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSKU_Format(t *testing.T) {
	re := regexp.MustCompile(`^PROD-[0-9A-F]{4}-[0-9A-F]{4}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		sku := GenerateSKU("prod")
		assert.Regexp(t, re, sku)
		seen[sku] = true
	}
	// 100回で衝突しない程度にはランダム
	assert.Greater(t, len(seen), 90)
}

func TestFormatOrderNumber(t *testing.T) {
	d := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "ORD-2026-001", FormatOrderNumber(d, 1))
	assert.Equal(t, "ORD-2026-042", FormatOrderNumber(d, 42))
	// 3桁を超えたらそのまま伸びる
	assert.Equal(t, "ORD-2026-1234", FormatOrderNumber(d, 1234))
}

// 番号には年しか入らないので、カウンタキーも年内で不変でなければ
// 日をまたいだ採番が同じ番号を生む
func TestYearKey_StableAcrossDays(t *testing.T) {
	d1 := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 31, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, "2026", YearKey(d1))
	assert.Equal(t, YearKey(d1), YearKey(d2))

	// 同じseqなら番号も同じ＝キーが年単位でないと一意制約に当たる
	assert.Equal(t, FormatOrderNumber(d1, 1), FormatOrderNumber(d2, 1))

	// 年が変われば番号もキーも変わる
	d3 := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.NotEqual(t, YearKey(d1), YearKey(d3))
	assert.NotEqual(t, FormatOrderNumber(d1, 1), FormatOrderNumber(d3, 1))
}
