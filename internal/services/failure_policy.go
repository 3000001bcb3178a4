package services

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/maxaizer/talentflow/internal/domain/models"
)

// FailurePolicy decides whether an operation is failed on purpose before it touches the store.
type FailurePolicy interface {
	Check(operation string) error
}

var simulatedFailures = []struct {
	code    int
	message string
}{
	{http.StatusRequestTimeout, "Network timeout"},
	{http.StatusServiceUnavailable, "Server overloaded"},
	{http.StatusInternalServerError, "Internal server error"},
}

// RandomFailure fails a fixed share of calls with one of the simulated network errors.
type RandomFailure struct {
	rate float64
	mu   sync.Mutex
	rnd  *rand.Rand
}

func NewRandomFailure(rate float64) *RandomFailure {
	return NewRandomFailureWithSource(rate, rand.NewSource(time.Now().UnixNano()))
}

func NewRandomFailureWithSource(rate float64, source rand.Source) *RandomFailure {
	return &RandomFailure{rate: rate, rnd: rand.New(source)}
}

func (r *RandomFailure) Check(operation string) error {
	if r.rate <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rnd.Float64() >= r.rate {
		return nil
	}
	failure := simulatedFailures[r.rnd.Intn(len(simulatedFailures))]
	return models.NewTransientError(failure.code, failure.message+" during "+operation)
}

type NeverFail struct{}

func (NeverFail) Check(string) error {
	return nil
}

// AlwaysFail fails every call with Code, or 500 when Code is zero.
type AlwaysFail struct {
	Code int
}

func (a AlwaysFail) Check(operation string) error {
	return models.NewTransientError(a.Code, "forced failure during "+operation)
}
