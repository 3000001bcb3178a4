package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/domain/events"
	"github.com/maxaizer/talentflow/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// SubscribeActivityLog writes the domain events published on bus to the log and the metrics.
func SubscribeActivityLog(bus EventBus.Bus) error {
	subscriptions := map[string]any{
		events.CandidateStageChangedTopic: onCandidateStageChanged,
		events.CandidateDeletedTopic:      onCandidateDeleted,
		events.JobsReorderedTopic:         onJobsReordered,
		events.AssessmentSubmittedTopic:   onAssessmentSubmitted,
	}
	for topic, handler := range subscriptions {
		if err := bus.Subscribe(topic, handler); err != nil {
			return err
		}
	}
	return nil
}

func onCandidateStageChanged(e events.CandidateStageChanged) {
	metrics.StageTransitionsCounter.WithLabelValues(string(e.To)).Inc()
	log.Infof("candidate %v moved from %v to %v", e.CandidateID, e.From, e.To)
}

func onCandidateDeleted(e events.CandidateDeleted) {
	log.Infof("candidate %v deleted with %v timeline entries", e.CandidateID, e.TimelineEntries)
}

func onJobsReordered(e events.JobsReordered) {
	log.Infof("job %v moved from position %v to %v", e.JobID, e.FromOrder, e.ToOrder)
}

func onAssessmentSubmitted(e events.AssessmentSubmitted) {
	metrics.AssessmentScores.Observe(float64(e.Score))
	log.Infof("candidate %v submitted assessment %v, score %v", e.CandidateID, e.AssessmentID, e.Score)
}
