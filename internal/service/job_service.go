package service

import (
	"fmt"

	"salonbook/internal/repository"
	"salonbook/internal/schedule"

	"github.com/sirupsen/logrus"
)

// JobService hosts the cron work: appointments left pending past their end
// time mean the client never arrived and nobody updated the record, so
// they are swept to no_show.
type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

func (s *JobService) MarkMissedAppointments() error {
	ids, err := s.Repo.GetPendingAppointmentIDsPastEndTime()
	if err != nil {
		return fmt.Errorf("cron job: failed to get pending appointments past end time: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	logrus.Infof("cron job: marking %d appointments as '%s'. IDs: %v", len(ids), schedule.StatusNoShow, ids)

	if err := s.Repo.UpdateAppointmentStatuses(ids, schedule.StatusNoShow); err != nil {
		return fmt.Errorf("cron job: failed to update appointment statuses: %w", err)
	}
	return nil
}
