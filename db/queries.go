package db

import (
	"database/sql"
	"fmt"
)

// InsertOutput records a produced output.
func InsertOutput(db *sql.DB, preset, inputPath, outputPath string) error {
	_, err := db.Exec(
		`INSERT INTO outputs (preset, input_path, output_path) VALUES (?, ?, ?)`,
		preset, inputPath, outputPath,
	)
	if err != nil {
		return fmt.Errorf("failed to insert output: %w", err)
	}
	return nil
}

// ListOutputs returns up to limit recorded outputs, most recent first.
// A limit of 0 or less returns all rows.
func ListOutputs(db *sql.DB, limit int) ([]Output, error) {
	query := `SELECT id, preset, input_path, output_path, created_at FROM outputs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query outputs: %w", err)
	}
	defer rows.Close()

	var outputs []Output
	for rows.Next() {
		var o Output
		if err := rows.Scan(&o.ID, &o.Preset, &o.InputPath, &o.OutputPath, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan output: %w", err)
		}
		outputs = append(outputs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outputs: %w", err)
	}

	return outputs, nil
}
