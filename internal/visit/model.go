// Package visit provides the technical visit domain model and data access.
package visit

import "database/sql"

// DefaultStatus is assigned when a write carries no status.
const DefaultStatus = "scheduled"

// Visit represents a technical visit to a physical address.
// Optional fields are pointers so that absent values round-trip as JSON null.
// City and UF are reserved columns; no operation populates them yet.
type Visit struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"` // ISO-8601, as supplied by the caller
	CEP         *string  `json:"cep"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	UF          *string  `json:"uf"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	Responsible *string  `json:"responsible"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// scanVisit scans a visit from a database row.
func scanVisit(row interface{ Scan(...interface{}) error }) (*Visit, error) {
	var v Visit
	var description, date, cep, address, city, uf, responsible sql.NullString
	var lat, lon sql.NullFloat64
	var status, createdAt, updatedAt sql.NullString

	err := row.Scan(
		&v.ID, &v.Title, &description, &date, &cep, &address,
		&city, &uf, &lat, &lon, &responsible,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		v.Description = &description.String
	}
	if date.Valid {
		v.Date = &date.String
	}
	if cep.Valid {
		v.CEP = &cep.String
	}
	if address.Valid {
		v.Address = &address.String
	}
	if city.Valid {
		v.City = &city.String
	}
	if uf.Valid {
		v.UF = &uf.String
	}
	if lat.Valid {
		v.Lat = &lat.Float64
	}
	if lon.Valid {
		v.Lon = &lon.Float64
	}
	if responsible.Valid {
		v.Responsible = &responsible.String
	}
	v.Status = status.String
	if v.Status == "" {
		v.Status = DefaultStatus
	}
	v.CreatedAt = createdAt.String
	v.UpdatedAt = updatedAt.String

	return &v, nil
}
