package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripsmith/pkg/metrics"
	"tripsmith/pkg/utils"
)

type NameResolverInterface interface {
	// Resolve never fails: on any problem it returns rawNames unchanged.
	Resolve(ctx context.Context, rawNames []string) []string
}

type NameResolver struct {
	llm    utils.GenerativeClientInterface
	logger *zap.Logger
}

func NewNameResolver(llm utils.GenerativeClientInterface, logger *zap.Logger) NameResolverInterface {
	return &NameResolver{
		llm:    llm,
		logger: logger.Named("name_resolver"),
	}
}

func (r *NameResolver) Resolve(ctx context.Context, rawNames []string) []string {
	if len(rawNames) == 0 {
		return rawNames
	}

	raw, err := r.llm.Generate(ctx, utils.GenerationRequest{
		Prompt:      buildResolverPrompt(rawNames),
		JSONOutput:  true,
		Temperature: utils.Float32(0),
	})
	if err != nil {
		return r.fallback(rawNames, "model call failed", err)
	}

	names, err := parseResolvedNames(raw, len(rawNames))
	if err != nil {
		return r.fallback(rawNames, "unusable model output", err)
	}

	r.logger.Debug("destination names resolved", zap.Strings("raw", rawNames), zap.Strings("resolved", names))
	return names
}

func (r *NameResolver) fallback(rawNames []string, reason string, err error) []string {
	metrics.ResolverFallbacks.Inc()
	r.logger.Warn("using raw destination names", zap.String("reason", reason), zap.Error(err))
	return rawNames
}

func buildResolverPrompt(rawNames []string) string {
	input, _ := json.Marshal(rawNames)

	var b strings.Builder
	b.WriteString("You are a Sri Lankan geography assistant.\n")
	b.WriteString("Correct the spelling of each place below to the official name of the Sri Lankan administrative district it refers to.\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Return a JSON array of strings and nothing else.\n")
	fmt.Fprintf(&b, "- The array must have exactly %d entries, in the same order as the input.\n", len(rawNames))
	b.WriteString("- If a name is not recognizable, return it unchanged.\n")
	b.WriteString("- Do not use markdown.\n\n")
	fmt.Fprintf(&b, "Input: %s\n", input)
	return b.String()
}

// parseResolvedNames accepts a bare array or, for providers whose JSON mode
// only allows objects, an object holding a single array.
func parseResolvedNames(raw string, want int) ([]string, error) {
	clean := utils.StripCodeFences(raw)

	var names []string
	if err := json.Unmarshal([]byte(clean), &names); err != nil {
		var wrapped map[string][]string
		if objErr := json.Unmarshal([]byte(clean), &wrapped); objErr != nil || len(wrapped) != 1 {
			return nil, fmt.Errorf("decode resolved names: %w", err)
		}
		for _, v := range wrapped {
			names = v
		}
	}

	if len(names) != want {
		return nil, fmt.Errorf("expected %d names, got %d", want, len(names))
	}
	return names, nil
}
