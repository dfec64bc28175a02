package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/pkg/errors"

	_ "github.com/lib/pq"
)

func buildDSNFromEnv() (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	if dbname == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, nil
		}
		return "", errors.New("POSTGRES_DB not set; set env vars or DATABASE_URL")
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
	return dsn, nil
}

func existsSampleSet(db *sql.DB, id int64) bool {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM sample_sets WHERE id = $1)", id).Scan(&exists)
	return err == nil && exists
}

// fetchSamples loads the raw values of one sample set. SQL NULLs come back
// as nil elements so the engine's absent-marker policy applies to them.
func fetchSamples(db *sql.DB, sampleSetID int64) ([]interface{}, error) {
	rows, err := db.Query("SELECT value FROM samples WHERE sample_set_id = $1 ORDER BY id ASC", sampleSetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []interface{}
	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if v.Valid {
			values = append(values, v.Float64)
		} else {
			values = append(values, nil)
		}
	}
	return values, rows.Err()
}

func insertResult(db *sql.DB, sampleSetID int64, s Summary, durationSeconds, memoryBytes float64) error {
	const q = `
INSERT INTO percentile_results
  (sample_set_id, q1, median, q3, mean, min, max, standard_deviation, duration, memory, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
`
	_, err := db.Exec(q,
		sampleSetID,
		s.Quartiles.Q1, s.Quartiles.Median, s.Quartiles.Q3,
		s.Mean, s.Min, s.Max, s.StdDev,
		durationSeconds, memoryBytes,
	)
	return err
}
