package visit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/visitaup/visitas-api/internal/apperrors"
)

// Page size bounds for List.
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// timeLayout is a fixed-width UTC timestamp. Fixed width keeps
// lexicographic order equal to chronological order in SQL sorts.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

// Repository provides CRUD operations for visits.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a visit repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO visits
	(title, description, date, cep, address, city, uf, lat, lon, responsible, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectColumns = `id, title, description, date, cep, address, city, uf, lat, lon, responsible, status, created_at, updated_at`

// Create adds a new visit and returns it with its generated ID.
// An empty status falls back to DefaultStatus; city and uf are always
// stored as NULL regardless of input.
func (r *Repository) Create(v *Visit) (*Visit, error) {
	if v.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalid)
	}

	status := v.Status
	if status == "" {
		status = DefaultStatus
	}
	now := nowUTC()

	result, err := r.db.Exec(insertSQL,
		v.Title, v.Description, v.Date, v.CEP, v.Address,
		nil, nil,
		v.Lat, v.Lon, v.Responsible,
		status, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a visit by its ID.
func (r *Repository) GetByID(id int64) (*Visit, error) {
	query := fmt.Sprintf("SELECT %s FROM visits WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	v, err := scanVisit(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("visit %d: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying visit %d: %w", id, err)
	}

	return v, nil
}

// Update overwrites every mutable field of a visit and refreshes
// updated_at. created_at, city and uf are never touched.
func (r *Repository) Update(id int64, v *Visit) error {
	if v.Title == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalid)
	}

	status := v.Status
	if status == "" {
		status = DefaultStatus
	}

	result, err := r.db.Exec(
		`UPDATE visits
		SET title = ?, description = ?, date = ?, cep = ?, address = ?,
			lat = ?, lon = ?, responsible = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		v.Title, v.Description, v.Date, v.CEP, v.Address,
		v.Lat, v.Lon, v.Responsible, status, nowUTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("visit %d: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// Delete removes a visit by ID. Deleting an id that does not exist is
// not an error; the returned flag reports whether a row was removed.
func (r *Repository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec("DELETE FROM visits WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}

	return rows > 0, nil
}

// ListOptions controls filtering and pagination for List.
// A zero Page or Size means "use the default".
type ListOptions struct {
	Page   int
	Size   int
	Status string // empty = all
}

// List returns visits ordered by scheduled date, most recent first.
// Rows without a date sort by creation time instead.
func (r *Repository) List(opts ListOptions) ([]*Visit, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	size := opts.Size
	if size == 0 {
		size = DefaultPageSize
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	query := fmt.Sprintf("SELECT %s FROM visits", selectColumns)
	var args []interface{}

	if opts.Status != "" {
		query += " WHERE status = ?"
		args = append(args, opts.Status)
	}

	query += " ORDER BY COALESCE(date, created_at) DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, size, (page-1)*size)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing visits: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var visits []*Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating visits: %w", err)
	}

	return visits, nil
}
