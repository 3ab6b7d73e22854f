package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/services"
)

// ConclusionMonitor equips each predictive conclusion with a monitoring
// plan: the authoritative source and the observation window its prediction
// will eventually be settled against. Conclusions without a usable plan
// stay unmonitored and are retried next pass.
type ConclusionMonitor struct {
	conclusions *services.ConclusionService
	model       completionModel
	logger      *slog.Logger
}

func NewConclusionMonitor(conclusions *services.ConclusionService, model completionModel) *ConclusionMonitor {
	return &ConclusionMonitor{
		conclusions: conclusions,
		model:       model,
		logger:      slog.Default().With("component", "conclusion_monitor"),
	}
}

func (m *ConclusionMonitor) Name() string { return "conclusion_monitor" }

func (m *ConclusionMonitor) Run(ctx context.Context) error {
	conclusions, err := m.conclusions.UnmonitoredPredictive(ctx)
	if err != nil {
		return err
	}
	for _, c := range conclusions {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.plan(ctx, c)
	}
	return nil
}

func (m *ConclusionMonitor) plan(ctx context.Context, c *ent.Conclusion) {
	horizonNote := ""
	switch {
	case c.TimeHorizonNote != nil && *c.TimeHorizonNote != "":
		horizonNote = *c.TimeHorizonNote
	case c.ValidUntil != nil:
		horizonNote = c.ValidUntil.Format("2006-01-02")
	}

	user := prompt.BuildConclusionMonitorUserMessage(c.Claim, horizonNote, c.PostedAt.Format("2006-01-02"))
	res, err := m.model.Complete(ctx, prompt.ConclusionMonitorSystem, user, prompt.ConclusionMonitorMaxTokens)
	if err != nil {
		m.logger.Warn("Monitor request failed", "conclusion_id", c.ID, "error", err)
		countItem(m.Name(), outcomeSkipped)
		return
	}

	var parsed monitoringResponse
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		m.logger.Warn("Unparseable monitor output", "conclusion_id", c.ID, "error", err)
		countItem(m.Name(), outcomeSkipped)
		return
	}
	plan, ok := parsed.plan()
	if !ok {
		m.logger.Warn("Monitor output named no source org, conclusion stays unmonitored", "conclusion_id", c.ID)
		countItem(m.Name(), outcomeSkipped)
		return
	}

	if err := m.conclusions.SaveMonitoring(ctx, c.ID, plan); err != nil {
		m.logger.Error("Failed to save monitoring plan", "conclusion_id", c.ID, "error", err)
		countItem(m.Name(), outcomeFailed)
		return
	}
	m.logger.Info("Monitoring plan set", "conclusion_id", c.ID, "source_org", *plan.SourceOrg)
	countItem(m.Name(), outcomeDone)
}

// monitoringResponse is the monitoring block the monitor and the simulator
// share, plus the simulator's execution note.
type monitoringResponse struct {
	SimulatedActionNote  *string `json:"simulated_action_note"`
	MonitoringSourceOrg  *string `json:"monitoring_source_org"`
	MonitoringSourceURL  *string `json:"monitoring_source_url"`
	MonitoringPeriodNote *string `json:"monitoring_period_note"`
	MonitoringStart      *string `json:"monitoring_start"`
	MonitoringEnd        *string `json:"monitoring_end"`
}

// plan converts the parsed block into a monitoring plan. ok is false when
// the model named no source org at all.
func (r monitoringResponse) plan() (models.MonitoringPlan, bool) {
	if r.MonitoringSourceOrg == nil || strings.TrimSpace(*r.MonitoringSourceOrg) == "" {
		return models.MonitoringPlan{}, false
	}
	org := strings.TrimSpace(*r.MonitoringSourceOrg)
	return models.MonitoringPlan{
		SourceOrg:  &org,
		SourceURL:  r.MonitoringSourceURL,
		PeriodNote: r.MonitoringPeriodNote,
		Start:      parsePlanDate(r.MonitoringStart),
		End:        parsePlanDate(r.MonitoringEnd),
	}, true
}

// parsePlanDate reads the leading yyyy-mm-dd of a date string. Prose or
// null yields nil.
func parsePlanDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if len(v) < 10 {
		return nil
	}
	ts, err := time.Parse("2006-01-02", v[:10])
	if err != nil {
		return nil
	}
	return &ts
}
