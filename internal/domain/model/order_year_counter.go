package model

// 注文番号の年次連番。
// 行スキャンで件数を数えるとレースで番号が重複するので、
// この行へのアトミックなインクリメントで採番する。
// 注文番号には年しか入らないため、カウンタを日単位にすると
// 翌日のseq=1が前日の番号と衝突する。必ず年単位で持つ。
type OrderYearCounter struct {
	Year string `gorm:"primaryKey;type:varchar(4)"`
	Seq  int64  `gorm:"not null"`
}
