package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"dashgen/internal/factory"
	"dashgen/internal/layout"
	"dashgen/internal/llm"
	"dashgen/internal/markdown"
	"dashgen/internal/normalize"
	"dashgen/internal/schema"
	"dashgen/internal/variety"
)

// Config tunes one Pipeline. Zero values fall back to the defaults below.
type Config struct {
	// StageTimeout bounds each model call.
	StageTimeout time.Duration
	// EmitBuffer sizes the event channel.
	EmitBuffer int
	// VarietyRetry re-runs component selection once when the first batch
	// fails the diversity check.
	VarietyRetry bool
	// MaxTokens caps the selection completion.
	MaxTokens int
}

const (
	defaultStageTimeout = 60 * time.Second
	defaultEmitBuffer   = 16
	defaultMaxTokens    = 8192
)

func (c Config) withDefaults() Config {
	if c.StageTimeout <= 0 {
		c.StageTimeout = defaultStageTimeout
	}
	if c.EmitBuffer <= 0 {
		c.EmitBuffer = defaultEmitBuffer
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}
	return c
}

// Pipeline turns markdown documents into streamed dashboard components.
// Safe for concurrent Run calls; each run gets its own Session.
type Pipeline struct {
	client llm.Client
	cfg    Config
	log    *zap.Logger
}

func New(client llm.Client, cfg Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{client: client, cfg: cfg.withDefaults(), log: log}
}

// Run processes one document and returns its event stream. The channel
// carries component and progress events while generation is underway and is
// closed after a terminal done or error event. Cancelling ctx aborts the run.
func (p *Pipeline) Run(ctx context.Context, source []byte) <-chan Event {
	_, events := p.start(ctx, source)
	return events
}

// RunSession is Run with access to the finished session (the CLI path reads
// the full sequence after the stream drains).
func (p *Pipeline) RunSession(ctx context.Context, source []byte) (*Session, <-chan Event) {
	return p.start(ctx, source)
}

func (p *Pipeline) start(ctx context.Context, source []byte) (*Session, <-chan Event) {
	session := newSession(func(f *factory.Factory) *normalize.Normalizer {
		return normalize.New(f, p.log)
	})
	events := make(chan Event, p.cfg.EmitBuffer)
	go p.run(ctx, session, source, events)
	return session, events
}

func (p *Pipeline) run(ctx context.Context, s *Session, source []byte, events chan<- Event) {
	defer close(events)

	s.Reset()
	sessionsStarted.Inc()
	log := p.log.With(zap.String("session", s.ID))
	log.Info("run started", zap.Int("source_bytes", len(source)))

	outline := markdown.Parse(source)

	s.state = StateAnalyzing
	analysis := p.analyze(ctx, log, outline)
	strategy := p.strategize(ctx, log, outline, analysis)
	log.Info("analysis complete",
		zap.String("content_type", analysis.ContentType),
		zap.String("strategy", strategy.Name))

	s.state = StateGenerating
	built, err := p.generate(ctx, log, s, outline, analysis, strategy, "")
	if err != nil {
		p.fail(ctx, s, events, log, err)
		return
	}

	report := variety.Validate(typesOf(built))
	if !report.Valid && p.cfg.VarietyRetry {
		log.Warn("low variety, retrying selection", zap.Strings("violations", report.Violations))
		retry, rerr := p.generate(ctx, log, s, outline, analysis, strategy, varietyFeedback(report.Violations))
		if rerr == nil {
			if r := variety.Validate(typesOf(retry)); r.Valid || r.UniqueTypes > report.UniqueTypes {
				built, report = retry, r
			}
		}
	}

	if len(built) == 0 {
		p.fail(ctx, s, events, log, fmt.Errorf("no usable components produced"))
		return
	}
	if !report.Valid {
		log.Warn("emitting despite variety violations", zap.Strings("violations", report.Violations))
	}

	total := len(built)
	for i, comp := range built {
		s.append(comp)
		componentsBuilt.Inc()
		log.Debug("component emitted",
			zap.String("type", comp.Type),
			zap.String("id", comp.ID),
			zap.String("zone", string(comp.Zone)))
		if !p.emit(ctx, events, Event{Type: EventComponent, SessionID: s.ID, Component: comp}) {
			return
		}
		if !p.emit(ctx, events, Event{Type: EventProgress, SessionID: s.ID, Progress: (i + 1) * 100 / total}) {
			return
		}
	}

	s.report = report
	s.state = StateComplete
	sessionsCompleted.WithLabelValues("complete").Inc()
	log.Info("run complete", zap.Int("components", total), zap.Int("unique_types", report.UniqueTypes))
	p.emit(ctx, events, Event{Type: EventDone, SessionID: s.ID, Count: total, Report: &report})
}

// fail marks the session errored and delivers the terminal error event,
// blocking like any other emission so the signal is never dropped.
func (p *Pipeline) fail(ctx context.Context, s *Session, events chan<- Event, log *zap.Logger, err error) {
	s.state = StateError
	sessionsCompleted.WithLabelValues("error").Inc()
	log.Error("run failed", zap.Error(err))
	p.emit(ctx, events, Event{Type: EventError, SessionID: s.ID, Message: err.Error()})
}

// analyze runs the content-analysis call, falling back to the structural
// heuristic on any failure.
func (p *Pipeline) analyze(ctx context.Context, log *zap.Logger, o *markdown.Outline) ContentAnalysis {
	timer := time.Now()
	defer func() { stageDuration.WithLabelValues("analyze").Observe(time.Since(timer).Seconds()) }()

	cctx, cancel := context.WithTimeout(ctx, p.cfg.StageTimeout)
	defer cancel()

	raw, err := p.client.CompleteWithSystem(cctx, analysisSystem, analysisPrompt(o))
	if err == nil {
		var a ContentAnalysis
		if obj, xerr := llm.ExtractObject(raw); xerr == nil {
			if json.Unmarshal(obj, &a) == nil && a.ContentType != "" {
				return a
			}
		}
		err = fmt.Errorf("unusable analysis response")
	}
	log.Warn("content analysis fell back to heuristics", zap.Error(err))
	heuristicFallbacks.WithLabelValues("analyze").Inc()
	return heuristicAnalysis(o)
}

func (p *Pipeline) strategize(ctx context.Context, log *zap.Logger, o *markdown.Outline, a ContentAnalysis) LayoutStrategy {
	timer := time.Now()
	defer func() { stageDuration.WithLabelValues("strategy").Observe(time.Since(timer).Seconds()) }()

	cctx, cancel := context.WithTimeout(ctx, p.cfg.StageTimeout)
	defer cancel()

	raw, err := p.client.CompleteWithSystem(cctx, strategySystem, strategyPrompt(o, a))
	if err == nil {
		var s LayoutStrategy
		if obj, xerr := llm.ExtractObject(raw); xerr == nil {
			if json.Unmarshal(obj, &s) == nil && s.Name != "" {
				return s
			}
		}
		err = fmt.Errorf("unusable strategy response")
	}
	log.Warn("layout strategy fell back to heuristics", zap.Error(err))
	heuristicFallbacks.WithLabelValues("strategy").Inc()
	return heuristicStrategy(a)
}

// generate runs component selection, parses the spec list out of the model
// response (recovering from truncation when possible), then normalizes,
// builds, and places each component. Individual bad specs are dropped;
// only a dead transport or an unparseable response is fatal.
func (p *Pipeline) generate(ctx context.Context, log *zap.Logger, s *Session,
	o *markdown.Outline, a ContentAnalysis, strat LayoutStrategy, note string) ([]*schema.Component, error) {

	timer := time.Now()
	defer func() { stageDuration.WithLabelValues("generate").Observe(time.Since(timer).Seconds()) }()

	cctx, cancel := context.WithTimeout(ctx, p.cfg.StageTimeout)
	defer cancel()

	raw, err := p.client.CompleteWithSystem(cctx, selectionSystem,
		selectionPrompt(o, a, strat, note), llm.WithMaxTokens(p.cfg.MaxTokens))
	if err != nil {
		return nil, fmt.Errorf("component selection: %w", err)
	}

	specs, err := parseSpecs(raw)
	if err != nil {
		return nil, err
	}
	log.Info("specs received", zap.Int("count", len(specs)))

	expanded := normalize.Expand(specs)
	built := make([]*schema.Component, 0, len(expanded))
	for _, spec := range expanded {
		comp, berr := s.normalizer.BuildSpec(spec)
		if berr != nil {
			specsDropped.Inc()
			log.Warn("spec dropped",
				zap.String("component_type", spec.ComponentType), zap.Error(berr))
			continue
		}
		built = append(built, layout.Apply(comp, spec))
	}
	return built, nil
}

// parseSpecs pulls the components array out of a model response, tolerating
// fence wrappers, surrounding prose, and truncated output.
func parseSpecs(raw string) ([]normalize.RawSpec, error) {
	type envelope struct {
		Components []normalize.RawSpec `json:"components"`
	}

	if obj, err := llm.ExtractObject(raw); err == nil {
		var env envelope
		if json.Unmarshal(obj, &env) == nil && len(env.Components) > 0 {
			return env.Components, nil
		}
	}

	objs, err := llm.RecoverComponentsArray(raw)
	if err != nil {
		return nil, err
	}
	specs := make([]normalize.RawSpec, 0, len(objs))
	for _, o := range objs {
		var spec normalize.RawSpec
		if json.Unmarshal(o, &spec) == nil && spec.ComponentType != "" {
			specs = append(specs, spec)
		}
	}
	if len(specs) == 0 {
		return nil, &llm.MalformedResponseError{Stage: "selection", Detail: "no component specs recovered"}
	}
	return specs, nil
}

func typesOf(comps []*schema.Component) []string {
	types := make([]string, len(comps))
	for i, c := range comps {
		types[i] = c.Type
	}
	return types
}
