package util

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify は商品名などからURL用スラッグを作る。
// 小文字化→ダイアクリティカル除去→空白をハイフン→英数とハイフン以外を除去。
func Slugify(input string) string {
	var b strings.Builder

	prevHyphen := false
	for _, r := range strings.ToLower(input) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if b.Len() > 0 && !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		case unicode.Is(unicode.Mn, r):
			// 結合文字は落とす
		default:
			if d, ok := asciiFold[r]; ok {
				b.WriteRune(d)
				prevHyphen = false
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// UniqueSlug は衝突時に -1, -2, .. を付ける
func UniqueSlug(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt)
}

// よく出るラテン拡張だけ素朴に畳む
var asciiFold = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n', 'ý': 'y',
}
