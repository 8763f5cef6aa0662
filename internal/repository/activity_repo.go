package repository

import (
	"context"
	"errors"
	"fmt"

	"activity-signup-service/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ActivityRepo реализует репозиторий активностей на базе PostgreSQL.
type ActivityRepo struct {
	db *Postgres
}

// NewActivityRepo создаёт новый экземпляр ActivityRepo c переданным подключением к PostgreSQL.
func NewActivityRepo(db *Postgres) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// ListActivities возвращает все активности с участниками.
// Активности идут в порядке создания, участники — в порядке записи.
func (r *ActivityRepo) ListActivities(ctx context.Context) (model.ActivityList, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT a.name, a.description, a.schedule, a.max_participants, s.email
FROM activities a
LEFT JOIN signups s ON s.activity_id = a.id
ORDER BY a.id, s.created_at, s.id
`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	list := make(model.ActivityList, 0)

	for rows.Next() {
		var name string
		var act model.Activity
		var email *string

		if err := rows.Scan(&name, &act.Description, &act.Schedule, &act.MaxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		if len(list) == 0 || list[len(list)-1].Name != name {
			act.Participants = make([]string, 0)
			list = append(list, model.NamedActivity{Name: name, Activity: act})
		}
		if email != nil {
			last := &list[len(list)-1].Activity
			last.Participants = append(last.Participants, *email)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

// GetActivityForUpdate возвращает активность по имени вместе с участниками,
// блокируя строку активности до конца текущей транзакции.
// Если активность не найдена, возвращает ErrActivityNotFound.
func (r *ActivityRepo) GetActivityForUpdate(ctx context.Context, name string) (int64, model.Activity, error) {
	q := r.db.GetQueryExecutor(ctx)

	var id int64
	var act model.Activity
	row := q.QueryRow(ctx, `
SELECT id, description, schedule, max_participants
FROM activities
WHERE name = $1
FOR UPDATE
`, name)
	if err := row.Scan(&id, &act.Description, &act.Schedule, &act.MaxParticipants); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.Activity{}, ErrActivityNotFound
		}
		return 0, model.Activity{}, fmt.Errorf("get activity: %w", err)
	}

	rows, err := q.Query(ctx, `
SELECT email FROM signups
WHERE activity_id = $1
ORDER BY created_at, id
`, id)
	if err != nil {
		return 0, model.Activity{}, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	act.Participants = make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return 0, model.Activity{}, fmt.Errorf("scan participant: %w", err)
		}
		act.Participants = append(act.Participants, email)
	}
	if err := rows.Err(); err != nil {
		return 0, model.Activity{}, fmt.Errorf("rows error: %w", err)
	}

	return id, act, nil
}

// AddParticipant записывает участника на активность.
// Если участник уже записан, возвращает ErrAlreadySignedUp.
func (r *ActivityRepo) AddParticipant(ctx context.Context, activityID int64, email string) error {
	q := r.db.GetQueryExecutor(ctx)
	_, err := q.Exec(ctx, `
INSERT INTO signups (id, activity_id, email) VALUES ($1, $2, $3)
`, uuid.NewString(), activityID, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уникальное ограничение (activity_id, email) нарушено
			return ErrAlreadySignedUp
		}
		return fmt.Errorf("insert signup: %w", err)
	}
	return nil
}

// RemoveParticipant удаляет запись участника с активности.
// Если записи не было, возвращает ErrNotSignedUp.
func (r *ActivityRepo) RemoveParticipant(ctx context.Context, activityID int64, email string) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `
DELETE FROM signups WHERE activity_id = $1 AND email = $2
`, activityID, email)
	if err != nil {
		return fmt.Errorf("delete signup: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotSignedUp
	}
	return nil
}

// CreateActivity создаёт новую активность и возвращает её внутренний ID.
// При конфликте по имени возвращает ErrActivityExists.
func (r *ActivityRepo) CreateActivity(ctx context.Context, name string, act model.Activity) (int64, error) {
	q := r.db.GetQueryExecutor(ctx)

	var id int64
	err := q.QueryRow(ctx, `
INSERT INTO activities (name, description, schedule, max_participants)
VALUES ($1, $2, $3, $4)
RETURNING id
`, name, act.Description, act.Schedule, act.MaxParticipants).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrActivityExists
		}
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	return id, nil
}

// CountActivities возвращает количество активностей в каталоге.
func (r *ActivityRepo) CountActivities(ctx context.Context) (int, error) {
	q := r.db.GetQueryExecutor(ctx)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM activities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return n, nil
}
