package db

import "time"

// Output represents a row in the outputs table: one successfully produced
// transformation result. For segmented output the path is the sequence
// pattern handed to the engine, not an individual segment file.
type Output struct {
	ID         int64
	Preset     string
	InputPath  string
	OutputPath string
	CreatedAt  time.Time
}
