package interfaces

import "context"

//go:generate mockgen -source=record_sequence_interface.go -destination=mocks/record_sequence_mock.go -package=mock_interfaces

// IRecordSequence reserves record numbers.
//
// Every call returns a number never returned before, lower than all previous ones.
type IRecordSequence interface {
	Reserve(ctx context.Context) (int64, error)
}
