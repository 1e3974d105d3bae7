// Package replay drives a session from a recorded list of pointer events
// and commands.
//
// A script is a YAML list of steps:
//
//	- {op: origin, x: 40, y: 120}
//	- {op: down, x: 50, y: 130}
//	- {op: move, x: 200, y: 180}
//	- {op: up}
//	- {op: next}
//	- {op: delete, index: 0}
//	- {op: confirm}
//
// Pointer coordinates are window coordinates; the origin step places the
// page surface.
package replay

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/pyhub-apps/pdfregion/pkg/export"
	"github.com/pyhub-apps/pdfregion/pkg/geometry"
	"github.com/pyhub-apps/pdfregion/pkg/session"
)

// Op names a step
type Op string

const (
	OpOrigin  Op = "origin"
	OpDown    Op = "down"
	OpMove    Op = "move"
	OpUp      Op = "up"
	OpLeave   Op = "leave"
	OpNext    Op = "next"
	OpPrev    Op = "prev"
	OpGoTo    Op = "goto"
	OpDelete  Op = "delete"
	OpConfirm Op = "confirm"
)

// Step is one scripted event
type Step struct {
	Op    Op      `yaml:"op"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
	Page  int     `yaml:"page,omitempty"`
	Index int     `yaml:"index,omitempty"`
}

func (s Step) point() geometry.Point {
	return geometry.Point{X: s.X, Y: s.Y}
}

// Parse reads a YAML script
func Parse(r io.Reader) ([]Step, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}

	var steps []Step
	if err := yaml.UnmarshalStrict(data, &steps); err != nil {
		return nil, errors.Wrap(err, "failed to parse script")
	}
	for i, st := range steps {
		if !st.Op.valid() {
			return nil, errors.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
	}
	return steps, nil
}

func (o Op) valid() bool {
	switch o {
	case OpOrigin, OpDown, OpMove, OpUp, OpLeave, OpNext, OpPrev, OpGoTo, OpDelete, OpConfirm:
		return true
	}
	return false
}

// Run applies steps to s in order and returns the session's report
// afterwards, which is nil unless a confirm step is still current.
// Confirming with nothing drawn is skipped, like a disabled button.
func Run(s *session.Session, steps []Step, log logrus.FieldLogger) (*export.Report, error) {
	for i, st := range steps {
		entry := log.WithFields(logrus.Fields{"step": i + 1, "op": st.Op})

		switch st.Op {
		case OpOrigin:
			s.SetSurfaceOrigin(st.point())
		case OpDown:
			s.PointerDown(st.point())
		case OpMove:
			s.PointerMove(st.point())
		case OpUp:
			entry.Debugf("drag %s", s.PointerUp())
		case OpLeave:
			entry.Debugf("drag %s", s.PointerLeave())
		case OpNext:
			s.NextPage()
		case OpPrev:
			s.PrevPage()
		case OpGoTo:
			if err := s.GoToPage(st.Page); err != nil {
				return nil, errors.Wrapf(err, "step %d", i+1)
			}
		case OpDelete:
			if !s.Delete(st.Index) {
				entry.WithField("index", st.Index).Debug("nothing to delete")
			}
		case OpConfirm:
			if !s.CanConfirm() {
				entry.Warn("confirm skipped: no selections")
				continue
			}
			if _, err := s.Confirm(); err != nil {
				return nil, errors.Wrapf(err, "step %d", i+1)
			}
		default:
			return nil, errors.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
	}
	return s.Report(), nil
}
