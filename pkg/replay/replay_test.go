package replay

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdfregion/pkg/export"
	"github.com/pyhub-apps/pdfregion/pkg/session"
	"github.com/pyhub-apps/pdfregion/pkg/viewport"
)

type pages int

func (p pages) PageCount() int { return int(p) }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newSession(n int) *session.Session {
	return session.New(pages(n), session.WithClock(func() time.Time { return time.Unix(0, 0) }))
}

const script = `
- {op: origin, x: 100, y: 50}
- {op: down, x: 110.4, y: 70.6}
- {op: move, x: 140.4, y: 110.6}
- {op: up}
- {op: next}
- {op: down, x: 300, y: 300}
- {op: move, x: 200, y: 200}
- {op: leave}
- {op: down, x: 100, y: 100}
- {op: up}
- {op: confirm}
`

func TestRunScript(t *testing.T) {
	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, steps, 11)

	report, err := Run(newSession(2), steps, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, report)

	want := []export.Entry{
		{Page: 1, Coordinates: export.Corners{TopLeftX: 10, TopLeftY: 21, BottomRightX: 40, BottomRightY: 61}},
		{Page: 2, Coordinates: export.Corners{TopLeftX: 100, TopLeftY: 150, BottomRightX: 200, BottomRightY: 250}},
	}
	if diff := cmp.Diff(want, report.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteAfterConfirmClearsReport(t *testing.T) {
	steps, err := Parse(strings.NewReader(`
- {op: down, x: 0, y: 0}
- {op: move, x: 20, y: 20}
- {op: up}
- {op: confirm}
- {op: delete, index: 0}
`))
	require.NoError(t, err)

	s := newSession(1)
	report, err := Run(s, steps, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, report)
	assert.Empty(t, s.Rectangles())
}

func TestConfirmWithoutSelectionsSkipped(t *testing.T) {
	report, err := Run(newSession(1), []Step{{Op: OpConfirm}, {Op: OpUp}, {Op: OpDelete, Index: 3}}, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestGoToOutOfRange(t *testing.T) {
	_, err := Run(newSession(2), []Step{{Op: OpGoTo, Page: 3}}, quietLogger())
	assert.ErrorIs(t, err, viewport.ErrPageOutOfRange)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown op":    "- {op: jump}\n",
		"unknown field": "- {op: up, z: 1}\n",
		"not a list":    "op: up\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}
