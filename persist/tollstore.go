package persist

import (
	"github.com/ventlab/breath/timing"
)

// TollTableName is the table that keeps one row per completed cycle.
const TollTableName = "toll_remainder"

// A TollRecord is one persisted end-of-cycle toll remainder.
type TollRecord struct {
	Time      float64
	Cycle     uint64
	Remainder uint8
}

// A TollStore records the toll remainder of every completed cycle through a
// DataRecorder. It implements breath.PersistStore.
type TollStore struct {
	recorder   DataRecorder
	timeTeller timing.TimeTeller
	cycle      uint64
}

// NewTollStore creates a TollStore and its backing table.
func NewTollStore(
	recorder DataRecorder,
	timeTeller timing.TimeTeller,
) *TollStore {
	s := &TollStore{
		recorder:   recorder,
		timeTeller: timeTeller,
	}

	s.recorder.CreateTable(TollTableName, TollRecord{})

	return s
}

// Save records one remainder.
func (s *TollStore) Save(remainder uint8) error {
	s.cycle++

	s.recorder.InsertData(TollTableName, TollRecord{
		Time:      float64(s.timeTeller.CurrentTime()),
		Cycle:     s.cycle,
		Remainder: remainder,
	})

	return nil
}

// A NullStore discards every remainder. It stands in when no durable
// storage is configured.
type NullStore struct{}

// Save does nothing.
func (NullStore) Save(_ uint8) error {
	return nil
}
