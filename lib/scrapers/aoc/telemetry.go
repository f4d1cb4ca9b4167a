package aoc

import (
	"aocfetch/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("aocfetch.lib.scrapers.aoc")

var instrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput makes clients created afterwards dump their
// http messages to `out` when debug logging is on.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	instrumentOutput = out
}
