package common

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"io"
	"time"
)

// --------------------------------------------------------------------------
// Process wide metrics
// --------------------------------------------------------------------------

var (
	dialsTotal        = metrics.NewCounter("rudf_dials_total")
	dialFailuresTotal = metrics.NewCounter("rudf_dial_failures_total")
	resetsTotal       = metrics.NewCounter("rudf_resets_total")
	commandDuration   = metrics.NewHistogram("rudf_command_duration_seconds")
)

// Failure kinds reported by IncCommandFailure
const (
	FailureConnect   = "connect"
	FailureLog       = "log"
	FailureTransport = "transport"
	FailureReply     = "reply"
	FailureNull      = "null"
)

// IncDial counts a dial attempt and whether it failed
func IncDial(failed bool) {
	dialsTotal.Inc()
	if failed {
		dialFailuresTotal.Inc()
	}
}

// IncReset counts a reconfiguration of the shared connection
func IncReset() {
	resetsTotal.Inc()
}

// IncCommand counts a command sent to the remote store
func IncCommand(verb string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`rudf_commands_total{verb=%q}`, verb)).Inc()
}

// IncCommandFailure counts a failed command execution by kind
func IncCommandFailure(kind string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`rudf_command_failures_total{kind=%q}`, kind)).Inc()
}

// ObserveCommand records the round trip time of a command started at start
func ObserveCommand(start time.Time) {
	commandDuration.UpdateDuration(start)
}

// WriteMetrics writes all metrics in Prometheus text format to w
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
