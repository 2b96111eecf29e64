package predictions

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// StorageKey is the single key all predictions are stored under
const StorageKey = "sportpredict-predictions"

var (
	ErrInvalidNumber = errors.New("please enter a valid number")
	ErrOutOfRange    = errors.New("probability must be between 0 and 100")
)

// Prediction is a user's win probability for each side of a match, in
// percent. TeamA is the home side.
type Prediction struct {
	TeamA float64 `json:"teamA"`
	TeamB float64 `json:"teamB"`
}

// NewPrediction builds a prediction from the home side's probability
func NewPrediction(teamA float64) (Prediction, error) {
	if math.IsNaN(teamA) || math.IsInf(teamA, 0) {
		return Prediction{}, ErrInvalidNumber
	}
	if teamA < 0 || teamA > 100 {
		return Prediction{}, ErrOutOfRange
	}
	return Prediction{TeamA: teamA, TeamB: 100 - teamA}, nil
}

// ParsePrediction parses user input such as "58" or "62.5"
func ParsePrediction(raw string) (Prediction, error) {
	teamA, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Prediction{}, ErrInvalidNumber
	}
	return NewPrediction(teamA)
}

// KeyValueStore is the storage surface predictions are persisted through
type KeyValueStore interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// LoadPredictions reads the saved predictions. Missing or unreadable data
// yields an empty map.
func LoadPredictions(storage KeyValueStore) map[string]Prediction {
	raw, ok, err := storage.GetItem(StorageKey)
	if err != nil {
		log.Printf("[Predictions] Failed to load predictions: %v", err)
		return map[string]Prediction{}
	}
	if !ok || raw == "" {
		return map[string]Prediction{}
	}

	var predictions map[string]Prediction
	if err := json.Unmarshal([]byte(raw), &predictions); err != nil {
		log.Printf("[Predictions] Failed to load predictions: %v", err)
		return map[string]Prediction{}
	}
	if predictions == nil {
		predictions = map[string]Prediction{}
	}
	return predictions
}

// SavePredictions writes the whole map under StorageKey
func SavePredictions(storage KeyValueStore, predictions map[string]Prediction) error {
	data, err := json.Marshal(predictions)
	if err != nil {
		log.Printf("[Predictions] Failed to save predictions: %v", err)
		return fmt.Errorf("failed to encode predictions: %w", err)
	}
	if err := storage.SetItem(StorageKey, string(data)); err != nil {
		log.Printf("[Predictions] Failed to save predictions: %v", err)
		return err
	}
	return nil
}

// Store holds predictions keyed by match id and persists every change.
// Predictions are local only and never sent to the server.
type Store struct {
	mu          sync.Mutex
	storage     KeyValueStore
	predictions map[string]Prediction
}

// OpenStore loads the saved predictions from storage
func OpenStore(storage KeyValueStore) *Store {
	return &Store{
		storage:     storage,
		predictions: LoadPredictions(storage),
	}
}

// All returns a copy of every prediction
func (s *Store) All() map[string]Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Prediction, len(s.predictions))
	for k, v := range s.predictions {
		out[k] = v
	}
	return out
}

// MatchIDs returns the ids with a saved prediction in ascending order
func (s *Store) MatchIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.predictions))
	for id := range s.predictions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Get returns the prediction for a match
func (s *Store) Get(matchID string) (Prediction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.predictions[matchID]
	return p, ok
}

// Save records or replaces the prediction for a match
func (s *Store) Save(matchID string, p Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.predictions[matchID] = p
	return SavePredictions(s.storage, s.predictions)
}

// Clear removes the prediction for a match
func (s *Store) Clear(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.predictions, matchID)
	return SavePredictions(s.storage, s.predictions)
}
