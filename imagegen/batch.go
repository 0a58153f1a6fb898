package imagegen

import (
	"context"
	"strings"
)

// Batch record statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// BatchRecord is one task's outcome within a batch report.
type BatchRecord struct {
	Prompt string `json:"prompt"`
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// RunBatch executes tasks strictly in input order. Later tasks may
// read files written by earlier ones, so there is no parallelism. A
// failing task is recorded and never stops the rest of the batch.
func (e *Executor) RunBatch(ctx context.Context, tasks []Task) []BatchRecord {
	records := make([]BatchRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, e.runBatchTask(ctx, task))
	}
	return records
}

// runBatchTask captures one task's result, converting every failure
// mode into a Failed record.
func (e *Executor) runBatchTask(ctx context.Context, task Task) BatchRecord {
	record := BatchRecord{Prompt: task.Prompt}

	result, err := e.Execute(ctx, task)
	if err != nil {
		record.Status = StatusFailed
		record.Error = err.Error()
		return record
	}
	if result.IsError {
		record.Status = StatusFailed
		record.Error = joinText(result.Content)
		return record
	}

	record.Status = StatusSuccess
	record.Output = joinText(result.Content)
	return record
}

// joinText summarizes a result's text items; image payloads never end
// up in batch reports.
func joinText(items []ContentItem) string {
	var parts []string
	for _, item := range items {
		if item.Type == ContentText && item.Text != "" {
			parts = append(parts, item.Text)
		}
	}
	return strings.Join(parts, "\n")
}
