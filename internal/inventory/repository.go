package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// database es el subconjunto de pgxpool.Pool que usa el repositorio.
// Interface chica para poder testear con fakes.
type database interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository accede a la tabla records.
// Contiene SQL y mapeo DB → modelo; asigna ids vía bigserial.
type Repository struct {
	db database
}

// NewRepository crea un repositorio de records.
func NewRepository(db database) *Repository {
	return &Repository{db: db}
}

// InsertOrUpdate persiste un record: INSERT cuando el id es el sentinel 0
// (la DB asigna id), UPDATE por id en caso contrario.
// Devuelve el registro persistido tal como quedó en DB.
func (repository *Repository) InsertOrUpdate(ctx context.Context, record Record) (Record, error) {
	if record.ID == 0 {
		return repository.insert(ctx, record)
	}
	return repository.update(ctx, record)
}

// Usamos RETURNING para obtener el id generado por DB.
func (repository *Repository) insert(ctx context.Context, record Record) (Record, error) {
	const query = `
		INSERT INTO records (name, price, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, name, price::float8, quantity;
	`

	var persisted Record
	err := repository.db.QueryRow(ctx, query, record.Name, record.Price, record.Quantity).
		Scan(&persisted.ID, &persisted.Name, &persisted.Price, &persisted.Quantity)
	if err != nil {
		return Record{}, err
	}

	return persisted, nil
}

func (repository *Repository) update(ctx context.Context, record Record) (Record, error) {
	const query = `
		UPDATE records
		SET name = $1, price = $2, quantity = $3, updated_at = now()
		WHERE id = $4
		RETURNING id, name, price::float8, quantity;
	`

	var persisted Record
	err := repository.db.QueryRow(ctx, query, record.Name, record.Price, record.Quantity, record.ID).
		Scan(&persisted.ID, &persisted.Name, &persisted.Price, &persisted.Quantity)
	if err != nil {
		// UPDATE sin fila afectada: el id ya no existe.
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrorNotFound
		}
		return Record{}, err
	}

	return persisted, nil
}

// GetByID busca un record por id; ausencia se mapea a ErrorNotFound.
func (repository *Repository) GetByID(ctx context.Context, id int64) (Record, error) {
	const query = `
		SELECT id, name, price::float8, quantity
		FROM records
		WHERE id = $1;
	`

	var record Record
	err := repository.db.QueryRow(ctx, query, id).
		Scan(&record.ID, &record.Name, &record.Price, &record.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrorNotFound
		}
		return Record{}, err
	}

	return record, nil
}

// Delete elimina un record por id.
// RETURNING distingue not-found de un delete efectivo.
func (repository *Repository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM records
		WHERE id = $1
		RETURNING id;
	`

	var deleted int64
	err := repository.db.QueryRow(ctx, query, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrorNotFound
		}
		return err
	}

	return nil
}
