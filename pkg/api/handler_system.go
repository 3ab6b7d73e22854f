package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// triggerPassHandler handles POST /api/v1/system/trigger: request a
// pipeline pass without waiting for the next tick. Triggers arriving while
// a pass is running collapse into one, so this always succeeds.
func (s *Server) triggerPassHandler(c *gin.Context) {
	if s.trigger == nil {
		c.JSON(http.StatusConflict, errorBody{Error: "no scheduler running in this process"})
		return
	}
	s.trigger.Trigger()
	c.JSON(http.StatusAccepted, gin.H{"triggered": true})
}

// configSnapshotHandler handles GET /api/v1/system/config: the resolved
// non-secret configuration, for operational inspection. Keys never leave
// the process; only which capabilities are configured is reported.
func (s *Server) configSnapshotHandler(c *gin.Context) {
	stats := s.cfg.Stats()

	providers := make([]string, 0, stats.LLMProviders)
	for name := range s.cfg.LLMProviderRegistry.GetAll() {
		providers = append(providers, name)
	}
	sort.Strings(providers)

	dataSources := make(map[string]gin.H, stats.DataSources)
	for id, src := range s.cfg.DataSourceRegistry.GetAll() {
		dataSources[id] = gin.H{
			"disabled":  src.Disabled,
			"cache_ttl": src.CacheTTL.String(),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"defaults": gin.H{
			"llm_provider":           s.cfg.Defaults.LLMProvider,
			"vision_provider":        s.cfg.Defaults.VisionProvider,
			"asr_provider":           s.cfg.Defaults.ASRProvider,
			"prompt_version":         s.cfg.Defaults.PromptVersion,
			"fetch_interval_minutes": s.cfg.Defaults.FetchIntervalMinutes,
		},
		"scheduler": gin.H{
			"interval":         s.cfg.Scheduler.Interval.String(),
			"post_batch_size":  s.cfg.Scheduler.PostBatchSize,
			"fact_batch_size":  s.cfg.Scheduler.FactBatchSize,
			"operator_timeout": s.cfg.Scheduler.OperatorTimeout.String(),
		},
		"llm_providers": providers,
		"data_sources":  dataSources,
	})
}
