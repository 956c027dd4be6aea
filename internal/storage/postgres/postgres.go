package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"crackKeeper/internal/config"
	"crackKeeper/internal/models"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// SaveRecord inserts a new crack record. The creation timestamp is stamped by
// the database, never by the caller.
func (s *Storage) SaveRecord(ctx context.Context, form models.CrackFormData, imageName, imageURL, imagePath string) (*models.CrackRecord, error) {
	const op = "storage.postgres.SaveRecord"

	recordID := uuid.New()

	query := `
        INSERT INTO crack_records (id, label, description, classification, location, datetime, length, width, depth, image_name, image_url, image_path)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at`

	record := models.CrackRecord{
		ID:             recordID,
		Label:          form.Label,
		Description:    form.Description,
		Classification: form.Classification,
		Location:       form.Location,
		Datetime:       form.Datetime,
		Length:         form.Length,
		Width:          form.Width,
		Depth:          form.Depth,
		ImageName:      imageName,
		ImageURL:       imageURL,
		ImagePath:      imagePath,
	}

	err := s.DB.QueryRowContext(ctx, query,
		record.ID,
		record.Label,
		record.Description,
		record.Classification,
		record.Location,
		record.Datetime,
		record.Length,
		record.Width,
		record.Depth,
		record.ImageName,
		record.ImageURL,
		record.ImagePath,
	).Scan(&record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

// UpdateRecord applies an edit patch and stamps updated_at server-side.
func (s *Storage) UpdateRecord(ctx context.Context, id uuid.UUID, data models.CrackEditData) error {
	const op = "storage.postgres.UpdateRecord"

	query := `
        UPDATE crack_records
        SET label = $1, description = $2, classification = $3, location = $4, datetime = $5, length = $6, width = $7, depth = $8, updated_at = NOW()
        WHERE id = $9`

	result, err := s.DB.ExecContext(ctx, query,
		data.Label,
		data.Description,
		data.Classification,
		data.Location,
		data.Datetime,
		data.Length,
		data.Width,
		data.Depth,
		id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: record with ID %s not found: %w", op, id, sql.ErrNoRows)
	}

	return nil
}

func (s *Storage) GetRecord(ctx context.Context, id uuid.UUID) (*models.CrackRecord, error) {
	const op = "storage.postgres.GetRecord"

	query := `
        SELECT id, label, description, classification, location, datetime, length, width, depth, image_name, image_url, image_path, created_at, updated_at
        FROM crack_records
        WHERE id = $1`

	record := &models.CrackRecord{}
	var updatedAt sql.NullTime

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.Label,
		&record.Description,
		&record.Classification,
		&record.Location,
		&record.Datetime,
		&record.Length,
		&record.Width,
		&record.Depth,
		&record.ImageName,
		&record.ImageURL,
		&record.ImagePath,
		&record.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: record with ID %s not found: %w", op, id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if updatedAt.Valid {
		record.UpdatedAt = &updatedAt.Time
	}

	return record, nil
}

func (s *Storage) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteRecord"

	query := `
        DELETE FROM crack_records
        WHERE id = $1`

	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: record with ID %s not found: %w", op, id, sql.ErrNoRows)
	}

	return nil
}

// ListRecords returns every record, newest first.
func (s *Storage) ListRecords(ctx context.Context) ([]models.CrackRecord, error) {
	const op = "storage.postgres.ListRecords"

	query := `
        SELECT id, label, description, classification, location, datetime, length, width, depth, image_name, image_url, image_path, created_at, updated_at
        FROM crack_records
        ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []models.CrackRecord

	for rows.Next() {
		var record models.CrackRecord
		var updatedAt sql.NullTime

		err = rows.Scan(
			&record.ID,
			&record.Label,
			&record.Description,
			&record.Classification,
			&record.Location,
			&record.Datetime,
			&record.Length,
			&record.Width,
			&record.Depth,
			&record.ImageName,
			&record.ImageURL,
			&record.ImagePath,
			&record.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if updatedAt.Valid {
			record.UpdatedAt = &updatedAt.Time
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) SaveLocation(ctx context.Context, name string) (*models.CustomLocation, error) {
	const op = "storage.postgres.SaveLocation"

	locationID := uuid.New()

	query := `
        INSERT INTO custom_locations (id, name)
        VALUES ($1, $2)
        RETURNING created_at`

	location := models.CustomLocation{
		ID:   locationID,
		Name: name,
	}

	err := s.DB.QueryRowContext(ctx, query, location.ID, location.Name).Scan(&location.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &location, nil
}

func (s *Storage) ListLocations(ctx context.Context) ([]models.CustomLocation, error) {
	const op = "storage.postgres.ListLocations"

	query := `
        SELECT id, name, created_at
        FROM custom_locations
        ORDER BY name ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var locations []models.CustomLocation

	for rows.Next() {
		var location models.CustomLocation

		if err = rows.Scan(&location.ID, &location.Name, &location.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return locations, nil
}

func (s *Storage) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteLocation"

	query := `
        DELETE FROM custom_locations
        WHERE id = $1`

	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: location with ID %s not found: %w", op, id, sql.ErrNoRows)
	}

	return nil
}

// SaveAuditEntry persists a consumed record event.
func (s *Storage) SaveAuditEntry(ctx context.Context, event models.RecordEvent) error {
	const op = "storage.postgres.SaveAuditEntry"

	query := `
        INSERT INTO audit_log (event, record_id, image_path, occurred_at)
        VALUES ($1, $2, $3, $4)`

	_, err := s.DB.ExecContext(ctx, query, event.Event, event.RecordID, event.ImagePath, event.OccurredAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
