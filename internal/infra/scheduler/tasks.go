package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskSweepTempProducts = "temp_products.sweep"

// SweepPayload narrows a sweep to one shop. An empty shop sweeps every shop.
type SweepPayload struct {
	Shop string `json:"shop,omitempty"`
}

func NewSweepTask(payload SweepPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSweepTempProducts, data), nil
}

func ParseSweepPayload(task *asynq.Task) (SweepPayload, error) {
	var payload SweepPayload
	if len(task.Payload()) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return SweepPayload{}, err
	}
	return payload, nil
}
