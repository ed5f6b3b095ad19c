package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"pet-boarding/internal/domain/animals"
)

var animalColumns = []string{
	"id", "name", "size_class", "breed", "comment",
	"owner_name", "owner_phone", "created_at", "updated_at",
}

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	query, args, err := psql.Select(animalColumns...).
		From("animals").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var a animals.Animal
		var size string
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&size,
			&a.Breed,
			&a.Comment,
			&a.OwnerName,
			&a.OwnerPhone,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.SizeClass = animals.SizeClass(size)
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Insert(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	query, args, err := psql.Insert("animals").
		Columns(animalColumns...).
		Values(
			a.ID,
			a.Name,
			string(a.SizeClass),
			a.Breed,
			a.Comment,
			a.OwnerName,
			a.OwnerPhone,
			a.CreatedAt,
			a.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return animals.Animal{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) Update(ctx context.Context, id string, p animals.Patch, at time.Time) error {
	return execOne(ctx, r.db, animalUpdate(id, p, at))
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, psql.Delete("animals").Where(squirrel.Eq{"id": id}))
}

// animalUpdate solo escribe las columnas presentes en el patch.
func animalUpdate(id string, p animals.Patch, at time.Time) squirrel.UpdateBuilder {
	set := map[string]any{"updated_at": at}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.SizeClass != nil {
		set["size_class"] = string(*p.SizeClass)
	}
	if p.Breed != nil {
		set["breed"] = *p.Breed
	}
	if p.Comment != nil {
		set["comment"] = *p.Comment
	}
	if p.OwnerName != nil {
		set["owner_name"] = *p.OwnerName
	}
	if p.OwnerPhone != nil {
		set["owner_phone"] = *p.OwnerPhone
	}
	return psql.Update("animals").SetMap(set).Where(squirrel.Eq{"id": id})
}
