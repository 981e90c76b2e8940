package daemon

import (
	"slices"
	"time"
)

// runOperation runs fn while holding the operation lock and records the
// outcome in the history.
func (s *Server) runOperation(kind string, inputs []string, fn func() (string, error)) (Operation, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	op := Operation{
		ID:        newID("op_"),
		Kind:      kind,
		Inputs:    inputs,
		Status:    "running",
		StartedAt: time.Now().UTC(),
	}
	s.logger.Info().Str("operation_id", op.ID).Str("kind", kind).Strs("inputs", inputs).Msg("operation started")

	out, err := fn()
	op.FinishedAt = time.Now().UTC()
	if err != nil {
		op.Status = "failed"
		op.Error = err.Error()
		s.logger.Error().Err(err).Str("operation_id", op.ID).Msg("operation failed")
	} else {
		op.Status = "succeeded"
		op.Output = out
		s.index.Refresh()
		s.logger.Info().Str("operation_id", op.ID).Str("output", out).
			Dur("took", op.FinishedAt.Sub(op.StartedAt)).Msg("operation finished")
	}

	s.mu.Lock()
	s.operations = append(s.operations, op)
	s.mu.Unlock()
	return op, err
}

func (s *Server) history() []Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.operations)
}
