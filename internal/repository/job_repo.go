package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetPendingAppointmentIDsPastEndTime finds appointments still pending even
// though their end already passed: the client never showed and staff never
// touched the record.
func (r *JobRepository) GetPendingAppointmentIDsPastEndTime() ([]int, error) {
	query := `SELECT id FROM appointments WHERE status = 'pending' AND end_time < NOW()`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying pending appointments past end time: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning appointment ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateAppointmentStatuses moves a batch of appointments to newStatus.
func (r *JobRepository) UpdateAppointmentStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating appointment statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logrus.Warnf("could not get rows affected: %v", err)
	} else {
		logrus.Infof("updated status for %d appointments to '%s'", rowsAffected, newStatus)
	}
	return nil
}
