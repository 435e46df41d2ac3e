package store

import (
	"database/sql"
	"fmt"
	"time"

	"waterme/models"
)

type PlantStore struct {
	db *sql.DB
}

func NewPlantStore(db *sql.DB) *PlantStore {
	return &PlantStore{db: db}
}

// normalize applies the write-time defaults shared by Create and Update.
// Updates are full-replace: omitted fields reset to these defaults, they do
// not keep their previous values.
func normalize(p *models.Plant) {
	if p.LastWatering == "" {
		p.LastWatering = time.Now().Format(time.RFC3339)
	}
}

func validate(p *models.Plant, requireUser bool) error {
	if requireUser && p.UserID <= 0 {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.NextWatering == "" {
		return fmt.Errorf("%w: next_watering is required", ErrValidation)
	}
	return nil
}

func (s *PlantStore) Create(p *models.Plant) (int, error) {
	if err := validate(p, true); err != nil {
		return 0, err
	}
	normalize(p)

	var id int
	err := s.db.QueryRow(`
		INSERT INTO plants (user_id, name, description, photo_url, last_watering, next_watering, light_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, p.UserID, p.Name, p.Description, p.PhotoURL, p.LastWatering, p.NextWatering, p.LightLevel).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("%w: insert plant: %v", ErrUnavailable, err)
	}

	return id, nil
}

// ListByUser returns the user's plants newest first. A user with no plants
// gets an empty slice, not nil, so the response serializes as [].
func (s *PlantStore) ListByUser(userID int) ([]models.Plant, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, name, COALESCE(description, ''), COALESCE(photo_url, ''),
		       COALESCE(last_watering, ''), COALESCE(next_watering, ''), COALESCE(light_level, 0)
		FROM plants
		WHERE user_id = $1
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: select plants: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	plants := []models.Plant{}
	for rows.Next() {
		var p models.Plant
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.PhotoURL,
			&p.LastWatering, &p.NextWatering, &p.LightLevel); err != nil {
			continue
		}
		plants = append(plants, p)
	}

	return plants, nil
}

// Update replaces every mutable field of the row. The matched-row count is
// deliberately unchecked: updating a missing id is a successful no-op, same
// as Delete.
func (s *PlantStore) Update(id int, p *models.Plant) error {
	if err := validate(p, false); err != nil {
		return err
	}
	normalize(p)

	_, err := s.db.Exec(`
		UPDATE plants
		SET name = $1, description = $2, photo_url = $3, next_watering = $4, last_watering = $5, light_level = $6
		WHERE id = $7
	`, p.Name, p.Description, p.PhotoURL, p.NextWatering, p.LastWatering, p.LightLevel, id)

	if err != nil {
		return fmt.Errorf("%w: update plant: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *PlantStore) Delete(id int) error {
	_, err := s.db.Exec(`DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete plant: %v", ErrUnavailable, err)
	}
	return nil
}
