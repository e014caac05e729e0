package domain

// TransportType is one of the five transport-mode categories a tweet can be
// classified into. Bus is the default when no keyword matches.
type TransportType string

const (
	TransportBus   TransportType = "bus"
	TransportMetro TransportType = "metro"
	TransportTrain TransportType = "train"
	TransportAuto  TransportType = "auto"
	TransportTaxi  TransportType = "taxi"
)

// AllTransportTypes lists every category in canonical order. Aggregation uses
// it to zero-initialize per-state breakdown counters so every report carries
// all five keys even when a mode never appears.
var AllTransportTypes = []TransportType{
	TransportBus,
	TransportMetro,
	TransportTrain,
	TransportAuto,
	TransportTaxi,
}
