// internal/session/store.go
package session

import (
	"sort"
	"sync"
	"time"

	"kotoba_keep/internal/model"

	"github.com/google/uuid"
)

// Store はゲストの進捗を保持するインメモリのセッションストアです。
// 登録ユーザーの耐久ストア (repository) と同じレコード形状を、セッションID単位で持ちます。
// アカウント作成時の移行 (sync) が済んだらセッションごと破棄されます。
// テストでは耐久ストアの代替としても使えます。
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[uuid.UUID]*model.ProgressRecord // sessionID -> itemID -> record
	touched  map[uuid.UUID]time.Time
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]map[uuid.UUID]*model.ProgressRecord),
		touched:  make(map[uuid.UUID]time.Time),
		ttl:      ttl,
	}
}

// NewSession は新しいゲストセッションIDを発行します。
func (s *Store) NewSession() uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.sessions[id] = make(map[uuid.UUID]*model.ProgressRecord)
	s.touched[id] = time.Now()
	s.mu.Unlock()
	return id
}

// Get は (session, item) の進捗のコピーを返します。無ければ model.ErrNotFound。
func (s *Store) Get(sessionID, itemID uuid.UUID) (*model.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	rec, ok := items[itemID]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

// Upsert は (session, item) の進捗を read-modify-write で原子的に更新します。
// mutate は既存レコード (無ければゼロ値デフォルト) を受け取って書き換えます。
// ロックを跨いで実行するので、同一キーへの並行更新でカウントが失われることはありません。
func (s *Store) Upsert(sessionID, itemID uuid.UUID, kind model.ItemKind, mutate func(rec *model.ProgressRecord)) (*model.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.sessions[sessionID]
	if !ok {
		// セッションが無ければその場で作る (ゲストが最初の回答を送ってきたケース)
		items = make(map[uuid.UUID]*model.ProgressRecord)
		s.sessions[sessionID] = items
	}
	s.touched[sessionID] = time.Now()

	rec, ok := items[itemID]
	if !ok {
		rec = &model.ProgressRecord{
			ProgressID: uuid.New(),
			LearnerID:  sessionID,
			ItemID:     itemID,
			ItemKind:   kind,
			CreatedAt:  time.Now().UTC(),
		}
		items[itemID] = rec
	}
	mutate(rec)
	rec.UpdatedAt = time.Now().UTC()

	cp := *rec
	return &cp, nil
}

// Snapshot はセッションの全進捗を移行用エントリとして返します。順序は item_id で安定。
func (s *Store) Snapshot(sessionID uuid.UUID) []model.ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	entries := make([]model.ProgressEntry, 0, len(items))
	for _, rec := range items {
		entries = append(entries, model.ProgressEntry{
			ItemID:         rec.ItemID,
			ItemKind:       rec.ItemKind,
			Level:          rec.Level,
			CorrectCount:   rec.CorrectCount,
			IncorrectCount: rec.IncorrectCount,
			NextReview:     rec.NextReview,
			MasteredAt:     rec.MasteredAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ItemID.String() < entries[j].ItemID.String()
	})
	return entries
}

// Clear は移行完了後にセッションを破棄します。
func (s *Store) Clear(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	delete(s.touched, sessionID)
	s.mu.Unlock()
}

// Sweep はTTLを過ぎたセッションを破棄し、削除した数を返します。
// main が1時間おきの ticker ゴルーチンから呼び出します。
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, at := range s.touched {
		if at.Before(cutoff) {
			delete(s.sessions, id)
			delete(s.touched, id)
			removed++
		}
	}
	return removed
}

// Len は保持中のセッション数 (テスト/監視用)
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
