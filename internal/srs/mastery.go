// internal/srs/mastery.go
package srs

// MasteryThreshold はレッスン解放に必要な習熟率 (90%ちょうどで到達)。
const MasteryThreshold = 90.0

// MasteryPercent はレッスンの習熟度をパーセントで返します。
// total == 0 のときは 0 (空レッスンのゼロ除算ガード)。
func MasteryPercent(total, mastered int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(mastered) / float64(total) * 100
}

// IsMastered はレッスンが習熟済みかどうかを返します。
// 空レッスンは決して習熟済みにならない。「習熟済みアイテム」は level >= 3 のレコード。
func IsMastered(total, mastered int) bool {
	if total <= 0 {
		return false
	}
	return MasteryPercent(total, mastered) >= MasteryThreshold
}
