package scenario

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/san-kum/growvec/internal/config"
	"github.com/san-kum/growvec/internal/dynarray"
)

// Session executes a scenario one step at a time.
type Session struct {
	runner      *Runner
	name        string
	stopOnError bool
	arr         *dynarray.Array[int]
	ops         []config.OpConfig
	pos         int
	stopped     bool
}

func (s *Session) Name() string                { return s.name }
func (s *Session) Array() *dynarray.Array[int] { return s.arr }
func (s *Session) Total() int                  { return len(s.ops) }
func (s *Session) Position() int               { return s.pos }

// Done reports whether no steps remain.
func (s *Session) Done() bool {
	return s.stopped || s.pos >= len(s.ops)
}

// Next runs the next step. It returns false once the session is done.
func (s *Session) Next() (Step, bool) {
	if s.Done() {
		return Step{}, false
	}

	op := s.ops[s.pos]
	step := Step{Index: s.pos, Op: op.Op, Arg: formatArg(op)}
	before := s.arr.Cap()
	output, err := s.apply(op)
	step.Output = output
	step.Size = s.arr.Len()
	step.Capacity = s.arr.Cap()
	step.Delta = step.Capacity - before
	s.pos++

	log := s.runner.logger
	if err != nil {
		step.Err = err.Error()
		log.Warn("operation failed",
			zap.String("scenario", s.name),
			zap.Int("step", step.Index),
			zap.String("op", op.Op),
			zap.Error(err))
		if s.stopOnError {
			s.stopped = true
		}
	} else {
		log.Debug("operation",
			zap.String("scenario", s.name),
			zap.Int("step", step.Index),
			zap.String("op", op.Op),
			zap.String("arg", step.Arg),
			zap.Int("size", step.Size),
			zap.Int("capacity", step.Capacity))
	}

	for _, o := range s.runner.observers {
		o.OnStep(step, s.arr)
	}
	return step, true
}

func (s *Session) apply(op config.OpConfig) (string, error) {
	arr := s.arr
	switch op.Op {
	case config.OpAppend:
		arr.Append(op.Value)
	case config.OpInsert:
		return "", arr.InsertAt(op.Index, op.Value)
	case config.OpGet:
		v, err := arr.Get(op.Index)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case config.OpSet:
		old, err := arr.Set(op.Index, op.Value)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(old), nil
	case config.OpRemove:
		return "", arr.RemoveAt(op.Index)
	case config.OpClear:
		arr.Clear()
	case config.OpAppendAll:
		arr.AppendAll(op.Values)
	case config.OpInsertAll:
		return "", arr.InsertAllAt(op.Index, op.Values)
	case config.OpContains:
		return strconv.FormatBool(arr.Contains(op.Value)), nil
	case config.OpIndexOf:
		return strconv.Itoa(arr.IndexOf(op.Value)), nil
	case config.OpIsEmpty:
		return strconv.FormatBool(arr.IsEmpty()), nil
	case config.OpDump:
		s.runner.logger.Info("array state",
			zap.String("scenario", s.name),
			zap.Object("array", arr))
		return arr.String(), nil
	}
	return "", nil
}
