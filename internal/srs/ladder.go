// internal/srs/ladder.go
package srs

import "time"

// MaxLadderLevel はオフセットテーブルが定義されている最上位レベル。
// これを超えたレベルは「習熟済み、ほぼ出題しない」扱いで即時レビュー可になります。
const MaxLadderLevel = 8

// Step は現在レベルと正誤から新レベルと次回レビュー時刻を計算します。
// 純粋関数で、I/Oも副作用もありません。
//
// レベル遷移:
//   - 正解: +1 (上限クランプなし)
//   - 不正解: level > 1 のときだけ -1。level 0 と 1 は失敗しても変わらない。
//     この非対称なフロアは意図的にそのまま残しています (レベル1での失敗に
//     ペナルティが無いのは元仕様の挙動で、修正せず保存)。
//
// オフセットは loc のタイムゾーンで加算してからUTCに変換します。
// loc が nil ならUTC。due判定の比較は常にUTCで行われます。
func Step(currentLevel int, correct bool, now time.Time, loc *time.Location) (int, time.Time) {
	if currentLevel < 0 {
		currentLevel = 0
	}

	level := currentLevel
	if correct {
		level++
	} else if level > 1 {
		level--
	}

	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)

	var next time.Time
	switch level {
	case 3:
		next = local.AddDate(0, 0, 1)
	case 4:
		next = local.AddDate(0, 0, 2)
	case 5:
		next = local.AddDate(0, 0, 7)
	case 6:
		next = local.AddDate(0, 0, 14)
	case 7:
		next = local.AddDate(0, 1, 0)
	case 8:
		next = local.AddDate(0, 4, 0)
	default:
		// 0,1,2 および 8 超は即時レビュー可
		next = local
	}

	return level, next.UTC()
}
