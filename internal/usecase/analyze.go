package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"textlens/config"
	"textlens/internal/adapter/analyzer"
	"textlens/internal/domain"
	"textlens/internal/port"
)

// AnalyzeUseCase validates a text and builds its report, preferring the
// remote analyzer and falling back to local computation.
type AnalyzeUseCase struct {
	tokenizer   port.Tokenizer
	keywords    *analyzer.KeywordExtractor
	sentiment   *analyzer.SentimentClassifier
	readability *analyzer.ReadabilityScorer
	remote      port.RemoteAnalyzer

	maxChars       int
	interrogatives []string
	remoteTimeout  time.Duration
	log            logrus.FieldLogger
}

// NewAnalyzeUseCase wires the local analyzers over lex. remote may be nil.
func NewAnalyzeUseCase(
	cfg *config.Config,
	lex port.Lexicon,
	remote port.RemoteAnalyzer,
	log logrus.FieldLogger,
) *AnalyzeUseCase {
	tok := analyzer.NewTokenizer()

	interrogatives := make([]string, 0, len(cfg.Analysis.Interrogatives))
	for _, w := range cfg.Analysis.Interrogatives {
		if w = tok.Normalize(w); w != "" {
			interrogatives = append(interrogatives, w)
		}
	}

	return &AnalyzeUseCase{
		tokenizer:      tok,
		keywords:       analyzer.NewKeywordExtractor(tok, lex, cfg.Keywords),
		sentiment:      analyzer.NewSentimentClassifier(tok, lex, cfg.Sentiment),
		readability:    analyzer.NewReadabilityScorer(tok, cfg.Readability),
		remote:         remote,
		maxChars:       cfg.Analysis.MaxChars,
		interrogatives: interrogatives,
		remoteTimeout:  cfg.Remote.Timeout,
		log:            log,
	}
}

// HasRemote reports whether a remote analyzer is configured.
func (u *AnalyzeUseCase) HasRemote() bool {
	return u.remote != nil
}

// questionMarks are the ASCII, full-width and Arabic question marks.
const questionMarks = "?？؟"

// Validate runs the input checks in order; the first failure wins.
func (u *AnalyzeUseCase) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.ErrEmptyInput
	}
	if strings.ContainsAny(text, questionMarks) {
		return domain.ErrNotAStatement
	}
	// Markers match inside words too, so suffixed forms such as "nimani"
	// and "qandaydir" are caught.
	folded := strings.Join(u.tokenizer.Terms(text), " ")
	for _, marker := range u.interrogatives {
		if strings.Contains(folded, marker) {
			return domain.ErrNotAStatement
		}
	}
	if analyzer.CountChars(text) > u.maxChars {
		return domain.TooLong(u.maxChars)
	}
	return nil
}

// Analyze validates text and returns its report. Only validation errors are
// returned; remote failures fall back to local computation.
func (u *AnalyzeUseCase) Analyze(ctx context.Context, text string) (*domain.AnalysisReport, error) {
	return u.analyze(ctx, text, true)
}

// AnalyzeLocal is Analyze without the remote analyzer.
func (u *AnalyzeUseCase) AnalyzeLocal(ctx context.Context, text string) (*domain.AnalysisReport, error) {
	return u.analyze(ctx, text, false)
}

func (u *AnalyzeUseCase) analyze(ctx context.Context, text string, useRemote bool) (*domain.AnalysisReport, error) {
	if err := u.Validate(text); err != nil {
		u.log.WithError(err).Debug("Rejected input")
		return nil, err
	}

	ts := u.tokenizer.Tokenize(text)
	stats := domain.Stats{
		Characters: ts.CharCount,
		Words:      ts.WordCount(),
		Sentences:  ts.SentenceCount,
	}
	readability := u.readability.ScoreTokens(ts)

	if useRemote && u.remote != nil {
		ra, err := u.callRemote(ctx, text)
		if err == nil {
			var report *domain.AnalysisReport
			report, err = remoteReport(ra, stats, readability)
			if err == nil {
				return report, nil
			}
		}
		u.log.WithError(err).WithField("provider", u.remote.Name()).Warn("Remote analysis failed, using local analysis")
	}

	keywords := u.keywords.Extract(text)
	report := &domain.AnalysisReport{
		Origin:      domain.OriginLocal,
		Partial:     true,
		Stats:       stats,
		Sentiment:   u.sentiment.Classify(text, keywords),
		Keywords:    keywords,
		Topic:       localTopic(keywords),
		Readability: readability,
	}
	render(report)
	return report, nil
}

// callRemote makes one bounded attempt. A panicking analyzer counts as a
// failed call.
func (u *AnalyzeUseCase) callRemote(ctx context.Context, text string) (ra domain.RemoteAnalysis, err error) {
	if u.remoteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.remoteTimeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			err = &domain.RemoteError{Op: "call", Err: fmt.Errorf("panic recovered: %v", p)}
		}
	}()

	return u.remote.Analyze(ctx, text)
}

func remoteReport(ra domain.RemoteAnalysis, stats domain.Stats, readability domain.ReadabilityResult) (*domain.AnalysisReport, error) {
	label, ok := domain.ParseSentiment(ra.Sentiment)
	if !ok {
		return nil, &domain.RemoteError{Op: "decode", Err: fmt.Errorf("unknown sentiment %q", ra.Sentiment)}
	}
	if strings.TrimSpace(ra.Topic) == "" {
		return nil, &domain.RemoteError{Op: "decode", Err: errors.New("missing topic")}
	}

	confidence := int(math.Round(ra.Confidence * 100))
	confidence = max(0, min(100, confidence))

	report := &domain.AnalysisReport{
		Origin: domain.OriginRemote,
		Stats:  stats,
		Sentiment: domain.SentimentResult{
			Label:       label,
			Confidence:  confidence,
			Explanation: strings.TrimSpace(ra.Explanation),
			Matched:     []string{},
		},
		Keywords:    []string{},
		Topic:       strings.TrimSpace(ra.Topic),
		Readability: readability,
	}
	render(report)
	return report, nil
}

const noTopic = "Matn qisqa yoki aniq mavzuni ifodalamaydi."

func localTopic(keywords []string) string {
	if len(keywords) == 0 {
		return noTopic
	}
	top := keywords
	if len(top) > 3 {
		top = top[:3]
	}
	return fmt.Sprintf("Matn %s so'zlari atrofida bo'lishi mumkin.", quoteJoin(top))
}

func quoteJoin(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = `"` + w + `"`
	}
	return strings.Join(quoted, ", ")
}
