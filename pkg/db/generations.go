package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Generation status values.
const (
	StatusPrepared = "prepared"
	StatusSaved    = "saved"
	StatusFailed   = "failed"
)

// Generation represents one generation run
type Generation struct {
	GenerationID    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	OutputName      string
	TemplateType    string
	Model           string
	SourceFilename  string
	SourceFormat    string
	SourceWordCount int
	Status          string
	BeatID          string
	OutputDir       string
	ValidationErrs  int
	ErrorMessage    string
}

// InsertGeneration records a freshly prepared generation
func (db *DB) InsertGeneration(gen Generation) error {
	if gen.Status == "" {
		gen.Status = StatusPrepared
	}

	_, err := db.Exec(`
		INSERT INTO generations (
			generation_id, output_name, template_type, model,
			source_filename, source_format, source_word_count, status
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, gen.GenerationID, gen.OutputName, gen.TemplateType, gen.Model,
		gen.SourceFilename, gen.SourceFormat, gen.SourceWordCount, gen.Status)
	if err != nil {
		return fmt.Errorf("failed to insert generation: %w", err)
	}
	return nil
}

// MarkSaved records a successful save
func (db *DB) MarkSaved(generationID, beatID, outputDir string) error {
	return db.updateStatus(generationID, StatusSaved, beatID, outputDir, 0, "")
}

// MarkFailed records a failed generation with its error
func (db *DB) MarkFailed(generationID string, validationErrs int, errorMessage string) error {
	return db.updateStatus(generationID, StatusFailed, "", "", validationErrs, errorMessage)
}

func (db *DB) updateStatus(generationID, status, beatID, outputDir string, validationErrs int, errorMessage string) error {
	result, err := db.Exec(`
		UPDATE generations
		SET status = ?, beat_id = ?, output_dir = ?,
		    validation_error_count = ?, error_message = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE generation_id = ?
	`, status, nullable(beatID), nullable(outputDir), validationErrs, nullable(errorMessage), generationID)
	if err != nil {
		return fmt.Errorf("failed to update generation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("generation %s not found", generationID)
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// GetGeneration retrieves a generation by its ID
func (db *DB) GetGeneration(generationID string) (*Generation, error) {
	row := db.QueryRow(`
		SELECT generation_id, created_at, updated_at, output_name, template_type,
		       model, source_filename, source_format, source_word_count,
		       status, beat_id, output_dir, validation_error_count, error_message
		FROM generations
		WHERE generation_id = ?
	`, generationID)

	gen, err := scanGeneration(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("generation %s not found", generationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}
	return gen, nil
}

// ListGenerations retrieves generations ordered by most recent first
func (db *DB) ListGenerations(limit int) ([]Generation, error) {
	query := `
		SELECT generation_id, created_at, updated_at, output_name, template_type,
		       model, source_filename, source_format, source_word_count,
		       status, beat_id, output_dir, validation_error_count, error_message
		FROM generations
		ORDER BY created_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var gens []Generation
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		gens = append(gens, *gen)
	}

	return gens, rows.Err()
}

// ListGenerationsByBeat retrieves the generation history of one Beat
func (db *DB) ListGenerationsByBeat(beatID string) ([]Generation, error) {
	rows, err := db.Query(`
		SELECT generation_id, created_at, updated_at, output_name, template_type,
		       model, source_filename, source_format, source_word_count,
		       status, beat_id, output_dir, validation_error_count, error_message
		FROM generations
		WHERE beat_id = ?
		ORDER BY created_at DESC
	`, beatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var gens []Generation
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		gens = append(gens, *gen)
	}

	return gens, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGeneration(row rowScanner) (*Generation, error) {
	var gen Generation
	var model, sourceFilename, sourceFormat, beatID, outputDir, errorMessage sql.NullString

	err := row.Scan(
		&gen.GenerationID,
		&gen.CreatedAt,
		&gen.UpdatedAt,
		&gen.OutputName,
		&gen.TemplateType,
		&model,
		&sourceFilename,
		&sourceFormat,
		&gen.SourceWordCount,
		&gen.Status,
		&beatID,
		&outputDir,
		&gen.ValidationErrs,
		&errorMessage,
	)
	if err != nil {
		return nil, err
	}

	gen.Model = model.String
	gen.SourceFilename = sourceFilename.String
	gen.SourceFormat = sourceFormat.String
	gen.BeatID = beatID.String
	gen.OutputDir = outputDir.String
	gen.ErrorMessage = errorMessage.String
	return &gen, nil
}
