package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateSKU は PREFIX-XXXX-XXXX 形式のSKUを作る。
// ランダム部はuuidから取る（英数のみ、大文字）。
func GenerateSKU(prefix string) string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s-%s", strings.ToUpper(prefix), hex[:4], hex[4:8])
}

// FormatOrderNumber は ORD-<年>-<連番> 形式。連番は3桁ゼロ詰め（溢れたらそのまま伸びる）。
func FormatOrderNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("ORD-%d-%03d", t.Year(), seq)
}

// YearKey は採番カウンタのキー。
// 番号には年しか入らないので、カウンタも年単位でなければ
// 年内で番号が重複する（orders.order_numberは一意制約）。
func YearKey(t time.Time) string {
	return t.Format("2006")
}
