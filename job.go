package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const defaultJobClass = "PercentileWorker"

// sidekiqJob is the subset of a Sidekiq payload the worker cares about.
type sidekiqJob struct {
	Class string            `json:"class"`
	Args  []json.RawMessage `json:"args"`
	Queue string            `json:"queue"`
}

func decodeJob(payload []byte) (sidekiqJob, error) {
	var job sidekiqJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return sidekiqJob{}, errors.Wrap(err, "invalid job json")
	}
	return job, nil
}

func (j sidekiqJob) accepted() bool {
	return j.Class == jobClass()
}

// sampleSetID extracts the sample set ID from the first job argument.
func (j sidekiqJob) sampleSetID() (int64, error) {
	if len(j.Args) == 0 {
		return 0, errors.New("job has no args")
	}
	return parseInt64(j.Args[0])
}

func jobClass() string {
	if c := os.Getenv("WORKER_JOB_CLASS"); c != "" {
		return c
	}
	return defaultJobClass
}

// parseInt64 extracts an int64 from a Sidekiq payload argument that may be
// encoded either as a JSON number or as a quoted string.
func parseInt64(raw json.RawMessage) (int64, error) {
	var asNumber int64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return 0, errors.New("empty string")
		}
		return strconv.ParseInt(asString, 10, 64)
	}

	return 0, errors.Errorf("unsupported arg: %s", string(raw))
}
