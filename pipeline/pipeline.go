package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/meteobn/bayesnet"
	"github.com/katalvlaran/meteobn/config"
	"github.com/katalvlaran/meteobn/discretize"
	"github.com/katalvlaran/meteobn/evaluate"
	"github.com/katalvlaran/meteobn/inference"
	"github.com/katalvlaran/meteobn/sampling"
	"github.com/katalvlaran/meteobn/score"
	"github.com/katalvlaran/meteobn/structure"
	"github.com/katalvlaran/meteobn/table"
)

// Sentinel errors.
var (
	ErrNoInput    = errors.New("pipeline: input.path is empty")
	ErrNoComplete = errors.New("pipeline: no complete rows to learn from")
)

// Pipeline runs the stages under one configuration and run ID.
type Pipeline struct {
	cfg   *config.Config
	log   *logrus.Entry
	runID string
}

// Model is what the learning half of the run produces.
type Model struct {
	Complete   *table.Table    // rows with every column observed
	Incomplete *table.Table    // rows with at least one gap
	MissingIdx []int           // positions of Incomplete's rows in the input
	Map        *discretize.Map // fitted on Complete
	Train      *table.Discrete // Complete, discretized
	Gaps       *table.Discrete // Incomplete, discretized
	Search     *structure.Result
	Network    *bayesnet.Network
}

// Result extends Model with the evaluation, synthetic and imputed tables.
type Result struct {
	*Model
	Accuracy        *evaluate.Report
	Synthetic       *table.Discrete
	SyntheticValues *table.Table
	Imputed         *table.Table // nil when imputation is disabled or nothing is missing
	ImputedCells    []evaluate.Cell
	Files           []string
}

// New validates cfg and returns a pipeline with a fresh run ID. A nil
// logger discards output.
func New(cfg *config.Config, logger *logrus.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	id := uuid.NewString()

	return &Pipeline{cfg: cfg, log: logger.WithField("run_id", id), runID: id}, nil
}

// RunID identifies this pipeline in logs.
func (p *Pipeline) RunID() string { return p.runID }

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() *config.Config { return p.cfg }

// Load reads input.path with the configured columns, station filter,
// missing markers and row window.
func (p *Pipeline) Load() (*table.Table, error) {
	in := p.cfg.Input
	if in.Path == "" {
		return nil, ErrNoInput
	}

	var t *table.Table
	err := p.stage("load", func(log *logrus.Entry) error {
		opts := table.DefaultCSVOptions()
		opts.Columns = in.Columns
		if in.FilterValue != "" {
			opts.FilterColumn, opts.FilterValue = in.FilterColumn, in.FilterValue
		}
		opts.MissingTokens = in.MissingTokens
		opts.MissingValues = in.MissingValues
		opts.Offset, opts.Limit = in.Offset, in.Limit

		var err error
		if t, err = table.ReadCSV(in.Path, opts); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"path": in.Path, "rows": t.Len(), "columns": len(t.Columns)}).Info("table loaded")
		return nil
	})

	return t, err
}

// Learn runs segregate, discretize, learn and fit over t's configured
// columns.
func (p *Pipeline) Learn(ctx context.Context, t *table.Table) (*Model, error) {
	m := &Model{}
	if err := p.segregate(t, m); err != nil {
		return nil, err
	}
	if err := p.discretize(m); err != nil {
		return nil, err
	}
	if err := p.learn(ctx, m); err != nil {
		return nil, err
	}
	if err := p.fit(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Run executes every stage. Outputs are written when output.dir is set.
func (p *Pipeline) Run(ctx context.Context, t *table.Table) (*Result, error) {
	start := time.Now()
	p.log.WithField("columns", strings.Join(p.cfg.Input.Columns, ",")).Info("run started")

	m, err := p.Learn(ctx, t)
	if err != nil {
		return nil, err
	}
	res := &Result{Model: m}

	e, err := inference.NewVariableElimination(m.Network, p.inferenceOptions(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if err := p.evaluate(ctx, e, res); err != nil {
		return nil, err
	}
	if err := p.sample(ctx, res); err != nil {
		return nil, err
	}
	if err := p.inverse(res); err != nil {
		return nil, err
	}
	if err := p.impute(ctx, e, res); err != nil {
		return nil, err
	}
	if p.cfg.Output.Dir != "" {
		if err := p.outputs(res); err != nil {
			return nil, err
		}
	}

	p.log.WithFields(logrus.Fields{
		"edges":   len(m.Network.Edges()),
		"files":   len(res.Files),
		"elapsed": time.Since(start).String(),
	}).Info("run finished")

	return res, nil
}

// stage wraps fn with start/end logging and error context.
func (p *Pipeline) stage(name string, fn func(log *logrus.Entry) error) error {
	log := p.log.WithField("stage", name)
	log.Debug("stage started")
	start := time.Now()
	if err := fn(log); err != nil {
		log.WithError(err).Error("stage failed")
		return fmt.Errorf("pipeline: %s: %w", name, err)
	}
	log.WithField("elapsed", time.Since(start).String()).Debug("stage finished")

	return nil
}

func (p *Pipeline) segregate(t *table.Table, m *Model) error {
	return p.stage("segregate", func(log *logrus.Entry) error {
		sel, err := t.Select(p.cfg.Input.Columns...)
		if err != nil {
			return err
		}
		m.Complete, m.Incomplete, m.MissingIdx = sel.Split()
		if m.Complete.Len() == 0 {
			return ErrNoComplete
		}
		log.WithFields(logrus.Fields{"complete": m.Complete.Len(), "incomplete": m.Incomplete.Len()}).Info("rows segregated")
		return nil
	})
}

func (p *Pipeline) discretize(m *Model) error {
	return p.stage("discretize", func(log *logrus.Entry) error {
		strategy, err := discretize.ParseStrategy(p.cfg.Discretize.Strategy)
		if err != nil {
			return err
		}
		opts := []discretize.Option{discretize.WithBins(p.cfg.Discretize.Bins), discretize.WithStrategy(strategy)}
		for key, k := range p.cfg.Discretize.ColumnBins {
			// Config keys may arrive lower-cased.
			for _, c := range m.Complete.Columns {
				if strings.EqualFold(c, key) {
					opts = append(opts, discretize.WithColumnBins(c, k))
				}
			}
		}

		if m.Map, err = discretize.Fit(m.Complete, opts...); err != nil {
			return err
		}
		if m.Train, err = m.Map.Transform(m.Complete); err != nil {
			return err
		}
		if m.Gaps, err = m.Map.Transform(m.Incomplete); err != nil {
			return err
		}
		for _, c := range m.Map.Reduced() {
			k, _ := m.Map.Card(c)
			log.WithFields(logrus.Fields{"column": c, "requested": m.Map.Requested(c), "fitted": k}).Warn("fewer bins than requested")
		}
		for _, d := range []*table.Discrete{m.Train, m.Gaps} {
			for _, c := range d.ClampedColumns() {
				log.WithFields(logrus.Fields{"column": c, "clamped": d.Clamped[c]}).Warn("values outside the fitted range were clamped")
			}
		}
		log.WithFields(logrus.Fields{"strategy": strategy, "cards": fmt.Sprint(m.Train.Cards)}).Info("table discretized")
		return nil
	})
}

func (p *Pipeline) learn(ctx context.Context, m *Model) error {
	return p.stage("learn", func(log *logrus.Entry) error {
		sc := p.cfg.Structure
		fn, err := score.ByName(sc.Score, sc.EquivalentSampleSize)
		if err != nil {
			return err
		}
		m.Search, err = structure.HillClimb(score.NewScorer(m.Train, fn),
			structure.WithContext(ctx),
			structure.WithMaxIndegree(sc.MaxIndegree),
			structure.WithMaxIterations(sc.MaxIterations),
			structure.WithEpsilon(sc.Epsilon),
			structure.WithTabuLength(sc.TabuLength),
			structure.WithWorkers(sc.Workers),
			structure.WithOnStep(func(s structure.Step) error {
				log.WithFields(logrus.Fields{
					"iteration": s.Iteration,
					"move":      s.Move.String(),
					"delta":     s.Delta,
					"score":     s.Score,
				}).Debug("move applied")
				return nil
			}),
		)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"score":      sc.Score,
			"total":      m.Search.Score,
			"edges":      len(m.Search.Graph.Edges()),
			"iterations": m.Search.Iterations,
			"converged":  m.Search.Converged,
		}).Info("structure learned")
		return nil
	})
}

func (p *Pipeline) fit(m *Model) error {
	return p.stage("fit", func(log *logrus.Entry) error {
		var err error
		m.Network, err = bayesnet.Fit(m.Search.Graph, m.Train, bayesnet.WithPseudoCount(p.cfg.Estimator.PseudoCount))
		if err != nil {
			return err
		}
		ll, used, err := m.Network.LogLikelihood(m.Train)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"log_likelihood": ll, "rows": used}).Info("parameters estimated")
		return nil
	})
}

func (p *Pipeline) inferenceOptions(ctx context.Context) []inference.Option {
	// Validate already rejected unknown orderings.
	h, _ := inference.ParseHeuristic(p.cfg.Inference.Ordering)

	return []inference.Option{inference.WithOrdering(h), inference.WithContext(ctx)}
}

func (p *Pipeline) evaluate(ctx context.Context, e *inference.Engine, res *Result) error {
	return p.stage("evaluate", func(log *logrus.Entry) error {
		var err error
		res.Accuracy, err = evaluate.Evaluate(e, res.Train,
			evaluate.WithContext(ctx),
			evaluate.WithWorkers(p.cfg.Inference.Workers),
			evaluate.WithValues(res.Map.Value),
		)
		if err != nil {
			return err
		}
		for _, s := range res.Accuracy.Scores {
			fields := logrus.Fields{"variable": s.Variable, "rows": s.Rows}
			for k, v := range s.Values {
				fields[k] = v
			}
			log.WithFields(fields).Info("variable evaluated")
		}
		return nil
	})
}

func (p *Pipeline) sample(ctx context.Context, res *Result) error {
	return p.stage("sample", func(log *logrus.Entry) error {
		count := p.cfg.Sampling.Count
		if count == 0 {
			count = res.Train.Len()
		}
		s, err := sampling.New(res.Network,
			sampling.WithSeed(p.cfg.Sampling.Seed),
			sampling.WithWorkers(p.cfg.Sampling.Workers),
			sampling.WithContext(ctx),
		)
		if err != nil {
			return err
		}
		if res.Synthetic, err = s.Table(count); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"rows": count, "seed": p.cfg.Sampling.Seed}).Info("synthetic table sampled")
		return nil
	})
}

func (p *Pipeline) inverse(res *Result) error {
	return p.stage("inverse", func(*logrus.Entry) error {
		var err error
		res.SyntheticValues, err = res.Map.Inverse(res.Synthetic)
		return err
	})
}

func (p *Pipeline) impute(ctx context.Context, e *inference.Engine, res *Result) error {
	if !p.cfg.Impute.Enabled || res.Incomplete.Len() == 0 {
		return nil
	}

	return p.stage("impute", func(log *logrus.Entry) error {
		rows := res.Incomplete
		if target := p.cfg.Impute.Target; target != "" {
			j := rows.Index(target)
			kept := &table.Table{Columns: rows.Columns}
			for _, r := range rows.Rows {
				if table.IsMissing(r[j]) {
					kept.Rows = append(kept.Rows, r)
				}
			}
			rows = kept
		}
		if rows.Len() == 0 {
			log.Info("no rows miss the imputation target")
			return nil
		}

		var err error
		res.Imputed, res.ImputedCells, err = evaluate.ImputeValues(e, rows, res.Map,
			evaluate.WithContext(ctx),
			evaluate.WithWorkers(p.cfg.Inference.Workers),
		)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"rows": rows.Len(), "cells": len(res.ImputedCells)}).Info("missing values imputed")
		return nil
	})
}
