// Package metrics records generation-run metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics stay
// optional without nil checks at call sites:
//
//	recorder := metrics.NewPrometheusRecorder(reg)
//	gen := site.NewGenerator(cfg, store).WithRecorder(recorder)
//
// A CLI run has no scrape endpoint; WriteTextfile exports the registry in
// the text exposition format for a node_exporter textfile collector.
package metrics
