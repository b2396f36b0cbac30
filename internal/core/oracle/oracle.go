// Package oracle asks an LLM for an independent similarity estimate. It is
// a best-effort augmentation signal: no failure in here may abort a
// comparison, so every error collapses into a zero score with the reason
// kept in the rationale.
package oracle

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/veritext/veritext/internal/config"
	"github.com/veritext/veritext/internal/core/model"
	"github.com/veritext/veritext/internal/llm"
)

var firstInteger = regexp.MustCompile(`\d+`)

// ClientSource yields the currently configured LLM client. The registry
// satisfies it; tests substitute a stub.
type ClientSource interface {
	Client() llm.Client
}

type Analyzer struct {
	source  ClientSource
	enabled bool
	timeout time.Duration
	prompt  string
}

func NewAnalyzer(source ClientSource, cfg config.LLMConfig) *Analyzer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Analyzer{
		source:  source,
		enabled: cfg.Enabled && source != nil,
		timeout: timeout,
		prompt:  cfg.Prompt,
	}
}

func (a *Analyzer) Enabled() bool {
	return a.enabled
}

// Analyze scores the (candidate, source) pair via the LLM. Always returns
// a usable result; see the package comment for the failure policy.
func (a *Analyzer) Analyze(ctx context.Context, candidate, source string) model.OracleResult {
	if !a.enabled {
		return model.OracleResult{Score: 0, Rationale: "semantic analysis is disabled"}
	}

	result, err := a.analyze(ctx, candidate, source)
	if err != nil {
		return model.OracleResult{Score: 0, Rationale: fmt.Sprintf("semantic analysis failed: %v", err)}
	}
	return result
}

func (a *Analyzer) analyze(ctx context.Context, candidate, source string) (model.OracleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(a.prompt, candidate, source)
	response, err := a.source.Client().Generate(ctx, prompt)
	if err != nil {
		return model.OracleResult{}, err
	}

	return parseResponse(response)
}

// parseResponse extracts the first integer from the reply as a percentage
// and treats the rest as the rationale. LLM replies come in every shape, so
// this is deliberately tolerant.
func parseResponse(response string) (model.OracleResult, error) {
	loc := firstInteger.FindStringIndex(response)
	if loc == nil {
		return model.OracleResult{}, fmt.Errorf("no score found in response: %q", model.Excerpt(response, 80))
	}

	percent, err := strconv.Atoi(response[loc[0]:loc[1]])
	if err != nil {
		return model.OracleResult{}, fmt.Errorf("unparseable score in response: %w", err)
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	rationale := response[:loc[0]] + response[loc[1]:]
	rationale = strings.TrimLeft(rationale, " \t\n%:.-—")
	rationale = strings.TrimSpace(rationale)
	if rationale == "" {
		rationale = "no explanation provided"
	}

	return model.OracleResult{
		Score:     float64(percent) / 100,
		Rationale: rationale,
	}, nil
}
