// Package meteobn is a Bayesian-network toolkit for daily station weather:
// discretize continuous measurements, learn a dependency graph by hill
// climbing, estimate conditional probability tables, answer MAP queries by
// variable elimination, sample synthetic tables and impute missing values.
//
// What's inside
//
//	core/       — the Dependency Graph: thread-safe, acyclic by construction
//	dfs/, bfs/  — topological order, cycle reports, ancestral sets
//	matrix/     — dense row-stochastic tables backing CPTs
//	table/      — observation tables, CSV ingestion and export
//	discretize/ — k-means, quantile and uniform binning with inverse maps
//	score/      — decomposable K2, BDeu and BIC local scores
//	structure/  — hill-climbing structure search with tabu list
//	bayesnet/   — fitted networks and the Laplace-smoothed estimator
//	inference/  — variable elimination, MAP and posterior queries
//	sampling/   — seeded forward (ancestral) sampling
//	evaluate/   — per-variable reconstruction metrics and imputation
//	describe/   — univariate statistics, gamma/Poisson/normal fits, KDE
//	report/     — DOT graphs, accuracy tables, comparative histograms
//	builder/    — seeded synthetic datasets
//	config/     — layered YAML / env / flag configuration
//	pipeline/   — load → discretize → learn → fit → evaluate → sample → impute
//	cmd/meteobn — the CLI (run, learn, describe, demo)
//
// Quick ASCII example of a learned graph:
//
//	SLP ──► TEMP ◄── DEWP
//	         │
//	    ┌────┴────┐
//	    ▼         ▼
//	   MAX       MIN
//
// Every algorithm package is deterministic for fixed inputs and seeds and
// never logs; the pipeline and CLI log through logrus.
//
//	go install github.com/katalvlaran/meteobn/cmd/meteobn@latest
package meteobn
