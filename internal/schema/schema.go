package schema

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		name TEXT,
		description TEXT,
		points INT,
		image_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS task_progress (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		task_id BIGINT NOT NULL REFERENCES tasks(id),
		completion_date TIMESTAMPTZ,
		notes TEXT
	)`,
}

var seedStatements = []string{
	`INSERT INTO tasks (id, name, description, points, image_url) VALUES
		(1, 'Get groceries', 'Get weekly groceries from supermarket', 10, 'https://live.staticflickr.com/7238/7259669024_61fc5a98f6_b.jpg'),
		(2, 'Exercise', 'Go to the gym for a one hour work out', 50, 'https://live.staticflickr.com/3329/3210745877_4feb7cd118_b.jpg'),
		(3, 'Finish report', 'Complete the progress report before it is due end of the month', 40, 'https://live.staticflickr.com/3400/4566115233_b2471d4de7_b.jpg'),
		(4, 'Book hotel', 'Book the accommodation for the upcoming trip.', 30, 'https://live.staticflickr.com/3255/2313201182_53b64e6633_b.jpg'),
		(5, 'Reserve dinner', 'Make dinner reservation for birthday', 30, 'https://live.staticflickr.com/2365/1908487131_7ae755a70d_b.jpg')
	ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO users (id, username, email) VALUES
		(1, 'john_doe', 'john.doe@example.com'),
		(2, 'jane_smith', 'jane.smith@example.com')
	ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO task_progress (id, user_id, task_id, completion_date, notes) VALUES
		(1, 1, 1, now(), 'Completed grocery shopping'),
		(2, 2, 2, now(), 'Gym session completed')
	ON CONFLICT (id) DO NOTHING`,
	// Seeding with explicit IDs leaves the serial sequences behind;
	// advance them so later inserts don't collide.
	`SELECT setval(pg_get_serial_sequence('tasks', 'id'), COALESCE((SELECT MAX(id) FROM tasks), 1))`,
	`SELECT setval(pg_get_serial_sequence('users', 'id'), COALESCE((SELECT MAX(id) FROM users), 1))`,
	`SELECT setval(pg_get_serial_sequence('task_progress', 'id'), COALESCE((SELECT MAX(id) FROM task_progress), 1))`,
}

// Init ensures the three tables and the seed rows exist. It is
// best-effort: a failed statement is logged and skipped so the
// service still starts, and running it twice changes nothing.
func Init(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) {
	for _, stmt := range createStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Error("failed to create table", zap.Error(err))
		}
	}
	seed(ctx, pool, logger)
}

// seed inserts the initial rows in one transaction so a partial
// batch never survives a failure.
func seed(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		logger.Error("failed to begin seed transaction", zap.Error(err))
		return
	}
	defer tx.Rollback(ctx)

	for _, stmt := range seedStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			logger.Error("failed to insert seed data", zap.Error(err))
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("failed to commit seed data", zap.Error(err))
	}
}
