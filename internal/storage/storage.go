package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sakethpatnayakuni/offline-chess/internal/game"
)

// Storage keys
const (
	keyOfflineGame = "offline_game"
	keyStats       = "stats"
	keyGamePrefix  = "game/"
)

// ErrNotFound is returned when a requested value has never been stored.
var ErrNotFound = errors.New("not found")

// Result is the human's result in a finished engine game.
type Result int

const (
	ResultLoss Result = iota
	ResultWin
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "loss"
	}
}

// GameStats stores aggregate results against the engine.
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	Draws          int            `json:"draws"`
	ByMethod       map[string]int `json:"by_method"`
	TotalPlayTime  time.Duration  `json:"total_play_time"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  int            `json:"current_streak"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{
		ByMethod: make(map[string]int),
	}
}

// GetWinRate returns the win rate as a percentage (0-100)
func (s *GameStats) GetWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameRecord is one finished game against the engine.
type GameRecord struct {
	ID       string        `json:"id"`
	Result   Result        `json:"result"`
	Outcome  string        `json:"outcome"`
	Method   string        `json:"method"`
	PGN      string        `json:"pgn"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir. An empty dir selects the
// platform data directory.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		dir, err = GetDatabaseDir()
		if err != nil {
			return nil, fmt.Errorf("resolve database dir: %w", err)
		}
	}
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Storage, error) {
	opts = opts.WithLogger(newBadgerLogger(log.Logger))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) put(key string, v any) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return putTxn(txn, key, v)
	})
}

func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		return getTxn(txn, key, v)
	})
}

func putTxn(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}

func getTxn(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

// SaveOfflineGame stores the in-progress offline game.
func (s *Storage) SaveOfflineGame(snap game.Snapshot) error {
	if err := s.put(keyOfflineGame, snap); err != nil {
		return fmt.Errorf("save offline game: %w", err)
	}
	return nil
}

// LoadOfflineGame returns the stored offline game, or ErrNotFound.
func (s *Storage) LoadOfflineGame() (game.Snapshot, error) {
	var snap game.Snapshot
	if err := s.get(keyOfflineGame, &snap); err != nil {
		return game.Snapshot{}, err
	}
	return snap, nil
}

// ClearOfflineGame removes the stored offline game.
func (s *Storage) ClearOfflineGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyOfflineGame))
	})
}

// LoadGameRecord returns the game stored under id, or ErrNotFound.
func (s *Storage) LoadGameRecord(id string) (*GameRecord, error) {
	rec := &GameRecord{}
	if err := s.get(keyGamePrefix+id, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListGameRecords returns every stored game, oldest first.
func (s *Storage) ListGameRecords() ([]*GameRecord, error) {
	var out []*GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyGamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			rec := &GameRecord{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Started.Before(out[j].Started)
	})
	return out, nil
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	err := s.get(keyStats, stats)
	if errors.Is(err, ErrNotFound) {
		return stats, nil
	}
	if stats.ByMethod == nil {
		stats.ByMethod = make(map[string]int)
	}
	return stats, err
}

// RecordGame stores rec and updates statistics in one transaction, so the
// stats never disagree with the stored games.
func (s *Storage) RecordGame(rec *GameRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	var stats *GameStats
	err := s.db.Update(func(txn *badger.Txn) error {
		stats = NewGameStats()
		if err := getTxn(txn, keyStats, stats); err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("load stats: %w", err)
		}
		if stats.ByMethod == nil {
			stats.ByMethod = make(map[string]int)
		}
		stats.add(rec)

		if err := putTxn(txn, keyGamePrefix+rec.ID, rec); err != nil {
			return fmt.Errorf("save game %s: %w", rec.ID, err)
		}
		return putTxn(txn, keyStats, stats)
	})
	if err != nil {
		return fmt.Errorf("record game: %w", err)
	}

	log.Info().
		Str("id", rec.ID).
		Stringer("result", rec.Result).
		Str("method", rec.Method).
		Int("games", stats.GamesPlayed).
		Msg("game recorded")
	return nil
}

// add folds one finished game into the totals.
func (s *GameStats) add(rec *GameRecord) {
	s.GamesPlayed++
	s.TotalPlayTime += rec.Duration
	if rec.Method != "" {
		s.ByMethod[rec.Method]++
	}

	switch rec.Result {
	case ResultDraw:
		s.Draws++
		s.CurrentStreak = 0
	case ResultWin:
		s.Wins++
		s.CurrentStreak++
		if s.CurrentStreak > s.LongestWinStrk {
			s.LongestWinStrk = s.CurrentStreak
		}
	default:
		s.Losses++
		s.CurrentStreak = 0
	}
}
