// Package pipeline composes meteobn's components into the batch run:
//
//	load → segregate → discretize → learn → fit → evaluate → sample → inverse → impute → outputs
//
// Every stage takes the previous stage's values and returns new ones; no
// stage mutates what an earlier stage produced. Stages log their start and
// end through logrus with a per-run "run_id" field, and any stage error
// aborts the run with no partial outputs beyond files already written.
package pipeline
