package world

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// World is one generated configuration, ready to hand to a host.
type World struct {
	ID        uuid.UUID
	Seed      int64
	Options   Options
	Tokens    *TokenCatalog
	Locations *LocationCatalog
	Rules     *RuleSet
	Pool      *Pool
}

// Generate validates opts, builds the rules and the pool, and logs a summary
// to logger. A nil logger discards output.
func Generate(opts Options, seed int64, logger *zap.Logger) (*World, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rules, err := DefaultRules(opts)
	if err != nil {
		return nil, err
	}
	tokens, _ := TokenCatalogue()
	locations, _ := LocationCatalogue()
	pool, err := BuildPool(opts, rules.Locations(), tokens, NewRNG(seed, "pool"))
	if err != nil {
		return nil, fmt.Errorf("build pool: %w", err)
	}

	w := &World{
		ID:        uuid.New(),
		Seed:      seed,
		Options:   opts,
		Tokens:    tokens,
		Locations: locations,
		Rules:     rules,
		Pool:      pool,
	}
	logger.Info("world generated",
		zap.String("generation_id", w.ID.String()),
		zap.Int64("seed", seed),
		zap.String("start", string(pool.Start)),
		zap.String("goal", opts.Goal.String()),
		zap.Int("locations", rules.Locations().Len()),
		zap.Int("progression", len(pool.Progression)),
		zap.Int("locked", len(pool.Locked)),
		zap.Int("filler", len(pool.Filler)),
	)
	for token, n := range countTokens(pool.Filler) {
		logger.Debug("filler", zap.String("token", string(token)), zap.Int("count", n))
	}
	return w, nil
}

// DefaultRules validates opts and builds its rules over the default catalogs.
func DefaultRules(opts Options) (*RuleSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}
	tokens, err := TokenCatalogue()
	if err != nil {
		return nil, fmt.Errorf("token catalog: %w", err)
	}
	locations, err := LocationCatalogue()
	if err != nil {
		return nil, fmt.Errorf("location catalog: %w", err)
	}
	rules, err := BuildRules(opts, tokens, locations)
	if err != nil {
		return nil, fmt.Errorf("build rules: %w", err)
	}
	return rules, nil
}

func (w *World) SlotData() map[string]any {
	return SlotData(w.Options, w.Pool.Start, w.Seed)
}

// Manifest is the serialisable summary of a world.
type Manifest struct {
	GenerationID string            `json:"generation_id"`
	Seed         int64             `json:"seed"`
	Start        RegionName        `json:"start"`
	Precollected []TokenName       `json:"precollected"`
	Progression  []TokenName       `json:"progression"`
	Locked       []Placement       `json:"locked"`
	Filler       []TokenName       `json:"filler"`
	Locations    []LocationName    `json:"locations"`
	SlotData     map[string]any    `json:"slot_data"`
	FillerCounts map[TokenName]int `json:"filler_counts"`
}

func (w *World) Manifest() Manifest {
	return Manifest{
		GenerationID: w.ID.String(),
		Seed:         w.Seed,
		Start:        w.Pool.Start,
		Precollected: w.Pool.Precollected,
		Progression:  w.Pool.Progression,
		Locked:       w.Pool.Locked,
		Filler:       w.Pool.Filler,
		Locations:    w.Rules.Locations().Names(),
		SlotData:     w.SlotData(),
		FillerCounts: countTokens(w.Pool.Filler),
	}
}

func countTokens(ts []TokenName) map[TokenName]int {
	out := make(map[TokenName]int)
	for _, t := range ts {
		out[t]++
	}
	return out
}
