package trace

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// LogTracer forwards span ends and points to a commonlog logger. Span
// begins are dropped; the end event already carries the elapsed time.
type LogTracer struct {
	log   commonlog.Logger
	level Level
}

func NewLogTracer(level Level) *LogTracer {
	return &LogTracer{log: commonlog.GetLogger("diec.trace"), level: level}
}

// ConfigureLog sets the global commonlog verbosity; path nil means stderr.
func ConfigureLog(verbosity int, path *string) {
	commonlog.Configure(verbosity, path)
}

func (t *LogTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	switch ev.Kind {
	case KindSpanEnd:
		if ev.Scope == ScopeDriver {
			t.log.Infof("%s %s done in %s %s", ev.Scope, ev.Name, ev.Elapsed, ev.Detail)
			return
		}
		t.log.Debugf("%s %s done in %s %s", ev.Scope, ev.Name, ev.Elapsed, ev.Detail)
	case KindPoint:
		t.log.Infof("%s %s %s", ev.Scope, ev.Name, ev.Detail)
	}
}

func (t *LogTracer) Flush() error { return nil }

func (t *LogTracer) Close() error { return nil }

func (t *LogTracer) Level() Level { return t.level }

func (t *LogTracer) Enabled() bool { return t.level > LevelOff }
