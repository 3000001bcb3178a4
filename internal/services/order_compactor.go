package services

import (
	"context"
	"time"

	"github.com/maxaizer/talentflow/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type OrderCompactionTarget interface {
	Compact(ctx context.Context) (int, error)
}

// OrderCompactor periodically renumbers job orders densely.
type OrderCompactor struct {
	jobs OrderCompactionTarget
	cron *cron.Cron
}

func NewOrderCompactor(jobs OrderCompactionTarget, schedule string) (*OrderCompactor, error) {
	if schedule == "" {
		return nil, errors.New("compaction schedule must not be empty")
	}

	oc := &OrderCompactor{
		jobs: jobs,
		cron: cron.New(),
	}

	if _, err := oc.cron.AddFunc(schedule, oc.compact); err != nil {
		return nil, errors.Wrapf(err, "invalid compaction schedule %q", schedule)
	}

	oc.cron.Start()
	log.Infof("job order compactor started, schedule: %s", schedule)
	return oc, nil
}

func (oc *OrderCompactor) Stop() {
	<-oc.cron.Stop().Done()
}

func (oc *OrderCompactor) compact() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	changed, err := oc.jobs.Compact(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to compact job orders: %v", err)
		return
	}
	if changed > 0 {
		log.Infof("job orders compacted, renumbered jobs: %v", changed)
	}
}
