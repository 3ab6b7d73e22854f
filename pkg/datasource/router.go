package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/credlens/pundit/pkg/config"
)

// adapter binds one upstream API.
type adapter interface {
	query(ctx context.Context, params map[string]any) Result
}

// Router dispatches verification queries to the configured data source
// adapters and caches successful responses per source.
type Router struct {
	registry *config.DataSourceRegistry
	adapters map[string]adapter
	caches   map[string]*cache
	logger   *slog.Logger
}

// sourceAliases maps the spellings extraction output tends to use onto
// canonical source IDs.
var sourceAliases = map[string]string{
	"fred":             "fred",
	"bls":              "bls",
	"world_bank":       "world_bank",
	"worldbank":        "world_bank",
	"wb":               "world_bank",
	"imf":              "imf",
	"federal_register": "federal_register",
	"fed_register":     "federal_register",
	"fedreg":           "federal_register",
	"usitc":            "usitc",
	"akshare":          "china_macro",
	"akshare_cn":       "china_macro",
	"china":            "china_macro",
	"china_macro":      "china_macro",
}

// NewRouter builds a router over every enabled source in the registry.
// Panics if registry is nil (programming error).
func NewRouter(registry *config.DataSourceRegistry) *Router {
	if registry == nil {
		panic("datasource.NewRouter: registry cannot be nil")
	}
	logger := slog.Default().With("component", "datasource")

	r := &Router{
		registry: registry,
		adapters: make(map[string]adapter),
		caches:   make(map[string]*cache),
		logger:   logger,
	}

	for id, sourceCfg := range registry.GetAll() {
		if sourceCfg.Disabled {
			continue
		}
		var a adapter
		switch id {
		case "fred":
			a = newFredAdapter(sourceCfg, logger)
		case "bls":
			a = newBLSAdapter(sourceCfg, logger)
		case "world_bank":
			a = newWorldBankAdapter(sourceCfg, logger)
		case "imf":
			a = newIMFAdapter(sourceCfg, logger)
		case "federal_register":
			a = newFedRegisterAdapter(sourceCfg, logger)
		case "usitc":
			a = newUSITCAdapter(sourceCfg, logger)
		case "china_macro":
			a = newChinaAdapter(sourceCfg, logger)
		default:
			logger.Warn("No adapter available for configured data source", "source", id)
			continue
		}
		r.adapters[id] = a
		if sourceCfg.CacheTTL > 0 {
			r.caches[id] = newCache(sourceCfg.CacheTTL)
		}
	}
	return r
}

// Supported reports whether sourceType resolves to an enabled adapter.
func (r *Router) Supported(sourceType string) bool {
	id, ok := sourceAliases[normalizeSourceType(sourceType)]
	if !ok {
		return false
	}
	_, ok = r.adapters[id]
	return ok
}

// Query routes a verification query to the adapter for sourceType.
// Failures come back with OK=false and an explanatory Content so the
// caller can fall back to web search; "web" short-circuits straight to
// that fallback.
func (r *Router) Query(ctx context.Context, sourceType string, params map[string]any) Result {
	st := normalizeSourceType(sourceType)

	if st == "web" {
		return Result{SourceType: "web"}
	}

	id, ok := sourceAliases[st]
	if !ok {
		r.logger.Warn("Unknown data source type", "source_type", sourceType)
		return fail(sourceType, fmt.Sprintf("unknown data source type: %s", sourceType))
	}

	sourceCfg, err := r.registry.Get(id)
	if err != nil {
		return fail(id, fmt.Sprintf("data source %s is not configured", id))
	}
	if sourceCfg.Disabled {
		msg := fmt.Sprintf("data source %s is disabled", id)
		if sourceCfg.Note != "" {
			msg = fmt.Sprintf("%s: %s", msg, sourceCfg.Note)
		}
		return fail(id, msg)
	}

	a, ok := r.adapters[id]
	if !ok {
		return fail(id, fmt.Sprintf("data source %s has no adapter", id))
	}

	key := cacheKey(id, params)
	if c := r.caches[id]; c != nil {
		if cached, hit := c.get(key); hit {
			r.logger.Debug("Data source cache hit", "source", id)
			return cached
		}
	}

	result := a.query(ctx, params)

	if result.OK {
		if c := r.caches[id]; c != nil {
			c.set(key, result)
		}
	}
	return result
}

func normalizeSourceType(sourceType string) string {
	return strings.ToLower(strings.TrimSpace(sourceType))
}

// cacheKey fingerprints a query. Map keys marshal in sorted order, so
// equivalent parameter sets produce the same key.
func cacheKey(sourceID string, params map[string]any) string {
	encoded, err := json.Marshal(params)
	if err != nil {
		encoded = []byte(fmt.Sprintf("%v", params))
	}
	return sourceID + "|" + string(encoded)
}
