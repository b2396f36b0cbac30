// Package core orchestrates the comparison pipeline: segmentation, pair
// scoring, match filtering and document-level aggregation.
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/veritext/veritext/internal/config"
	"github.com/veritext/veritext/internal/core/model"
	"github.com/veritext/veritext/internal/core/oracle"
	"github.com/veritext/veritext/internal/core/segment"
	"github.com/veritext/veritext/internal/core/similarity"
	"github.com/veritext/veritext/internal/core/textnorm"
)

// ErrEmptyText is the one caller-input error: a required text was missing.
// Everything else degrades to a defined neutral result.
var ErrEmptyText = errors.New("text must not be empty")

const (
	matchExcerptLimit     = 200
	paragraphExcerptLimit = 300
)

// PairScorer scores one text pair in [0, 1].
type PairScorer interface {
	Score(a, b string) float64
}

type Detector struct {
	Segmenter *segment.Segmenter
	Scorer    PairScorer
	Oracle    *oracle.Analyzer

	MinParagraphTokens int
	RelevanceThreshold float64
	MinSentences       int
	Verdicts           config.VerdictConfig
}

func NewDetector(cfg *config.Config, analyzer *oracle.Analyzer) *Detector {
	norm := textnorm.NewNormalizer(cfg.Language.Stopwords, cfg.Language.MinTokenLength)
	return &Detector{
		Segmenter:          segment.NewSegmenter(),
		Scorer:             similarity.NewScorer(norm),
		Oracle:             analyzer,
		MinParagraphTokens: cfg.Detector.MinParagraphTokens,
		RelevanceThreshold: cfg.Detector.RelevanceThreshold,
		MinSentences:       cfg.Detector.MinSentences,
		Verdicts:           cfg.Verdict,
	}
}

// ComparePair is the whole-document variant: one score for the two texts,
// verdict on the pair thresholds.
func (d *Detector) ComparePair(text1, text2 string) (*model.PairReport, error) {
	if strings.TrimSpace(text1) == "" || strings.TrimSpace(text2) == "" {
		return nil, ErrEmptyText
	}

	score := d.Scorer.Score(text1, text2)
	percent := model.Percent(score)

	return &model.PairReport{
		SimilarityScore: percent,
		Status:          verdict(score, d.Verdicts.PairHigh, d.Verdicts.PairMedium),
		Details:         fmt.Sprintf("The similarity between the two texts is %.2f%%", percent),
	}, nil
}

type sourceParagraph struct {
	name    string
	ordinal int
	text    string
}

// CompareDocument scores every retained document paragraph against every
// retained source paragraph and folds the surviving matches into one
// report.
func (d *Detector) CompareDocument(ctx context.Context, text string, sources map[string]string) (*model.DocumentReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	paragraphs := d.Segmenter.Split(text, d.MinSentences)
	sourceParagraphs := d.segmentSources(sources)

	oracleEnabled := d.Oracle != nil && d.Oracle.Enabled()

	var results []model.ParagraphReport
	for i, para := range paragraphs {
		if len(strings.Fields(para)) < d.MinParagraphTokens {
			continue
		}

		var matches []model.MatchRecord
		for _, sp := range sourceParagraphs {
			score := d.Scorer.Score(para, sp.text)
			if score <= d.RelevanceThreshold {
				continue
			}

			rec := model.MatchRecord{
				Source:          sp.name,
				SourceParagraph: sp.ordinal,
				Similarity:      score,
				MatchedText:     model.Excerpt(sp.text, matchExcerptLimit),
			}
			if oracleEnabled {
				res := d.Oracle.Analyze(ctx, para, sp.text)
				oscore := res.Score
				rec.OllamaScore = &oscore
				rec.OllamaRationale = res.Rationale
			}
			matches = append(matches, rec)
		}

		if len(matches) == 0 {
			continue
		}

		sort.SliceStable(matches, func(a, b int) bool {
			if matches[a].Similarity != matches[b].Similarity {
				return matches[a].Similarity > matches[b].Similarity
			}
			if matches[a].Source != matches[b].Source {
				return matches[a].Source < matches[b].Source
			}
			return matches[a].SourceParagraph < matches[b].SourceParagraph
		})

		results = append(results, model.ParagraphReport{
			Paragraph: i + 1,
			Excerpt:   model.Excerpt(para, paragraphExcerptLimit),
			Matches:   matches,
		})
	}

	report := d.aggregate(results, oracleEnabled)
	report.TotalParagraphs = len(paragraphs)
	return report, nil
}

// segmentSources flattens all sources into one ordered slice of retained
// paragraphs. Source names are sorted so map iteration order never leaks
// into the report.
func (d *Detector) segmentSources(sources map[string]string) []sourceParagraph {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []sourceParagraph
	for _, name := range names {
		for j, para := range d.Segmenter.Split(sources[name], d.MinSentences) {
			if len(strings.Fields(para)) < d.MinParagraphTokens {
				continue
			}
			out = append(out, sourceParagraph{name: name, ordinal: j + 1, text: para})
		}
	}
	return out
}

func (d *Detector) aggregate(results []model.ParagraphReport, oracleEnabled bool) *model.DocumentReport {
	var lexicalSum, oracleSum float64
	for i := range results {
		top := &results[i].Matches[0]
		lexicalSum += top.Similarity
		if top.OllamaScore != nil {
			oracleSum += *top.OllamaScore
		}
	}

	var overall, oracleOverall float64
	if len(results) > 0 {
		overall = lexicalSum / float64(len(results))
		oracleOverall = oracleSum / float64(len(results))
	}

	// Scores become percentages only now; sorting and aggregation above ran
	// on the raw values.
	for i := range results {
		for j := range results[i].Matches {
			m := &results[i].Matches[j]
			m.Similarity = model.Percent(m.Similarity)
			if m.OllamaScore != nil {
				p := model.Percent(*m.OllamaScore)
				m.OllamaScore = &p
			}
		}
	}

	decisive := overall
	if oracleEnabled && oracleOverall > decisive {
		decisive = oracleOverall
	}

	report := &model.DocumentReport{
		OverallScore:  model.Percent(overall),
		Status:        verdict(decisive, d.Verdicts.DocHigh, d.Verdicts.DocMedium),
		Details:       fmt.Sprintf("Found %d paragraph(s) with matches above the relevance threshold; overall similarity is %.2f%%", len(results), model.Percent(overall)),
		Results:       results,
		OllamaEnabled: oracleEnabled,
	}
	if oracleEnabled {
		p := model.Percent(oracleOverall)
		report.OverallOllamaScore = &p
	}
	return report
}

func verdict(score, high, medium float64) string {
	switch {
	case score >= high:
		return model.StatusHigh
	case score >= medium:
		return model.StatusMedium
	default:
		return model.StatusLow
	}
}
