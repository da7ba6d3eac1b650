package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cx-platform/projects-dashboard/internal/api/metrics"
	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// DispatchService translates (model, action) requests into gateway calls and
// normalizes every outcome into the uniform result envelope.
type DispatchService struct {
	gateway ports.ResourceGateway
}

func NewDispatchService(gateway ports.ResourceGateway) *DispatchService {
	return &DispatchService{gateway: gateway}
}

// Dispatch validates the request, invokes the gateway once, and returns the
// envelope. The envelope starts in the error state and is flipped to success
// only when the upstream payload is defined; callers never see a partial
// result.
func (s *DispatchService) Dispatch(ctx context.Context, session *domain.Session, in ports.DispatchInput) domain.Result {
	result := domain.NewResult()

	if !domain.ValidModel(in.Model) {
		result.Message = fmt.Sprintf("unknown model %q", in.Model)
		metrics.DispatchTotal.WithLabelValues(in.Model, in.Action, "rejected").Inc()
		return result
	}

	action, err := domain.ParseAction(in.Action)
	if err != nil {
		result.Message = fmt.Sprintf("unknown action %q", in.Action)
		metrics.DispatchTotal.WithLabelValues(in.Model, in.Action, "rejected").Inc()
		return result
	}

	if action.RequiresID() && in.ID == "" {
		result.Message = fmt.Sprintf("action %q requires an id", in.Action)
		metrics.DispatchTotal.WithLabelValues(in.Model, in.Action, "rejected").Inc()
		return result
	}

	start := time.Now()
	payload, err := s.gateway.Invoke(ctx, in.Model, action, session.Token, in.ID, in.Data, in.Query)
	metrics.UpstreamDuration.WithLabelValues(in.Model, in.Action).Observe(time.Since(start).Seconds())

	if err != nil || payload == nil {
		metrics.DispatchTotal.WithLabelValues(in.Model, in.Action, "error").Inc()
		return result
	}

	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		metrics.DispatchTotal.WithLabelValues(in.Model, in.Action, "error").Inc()
		return result
	}

	result.Error = false
	result.Data = doc.Data
	if verb, ok := action.Verb(); ok {
		result.Message = fmt.Sprintf("%s has been successfully %s!", domain.Singularize(in.Model), verb)
	} else {
		// Reads have no verb in the message table; succeed silently.
		result.Message = ""
	}

	metrics.DispatchTotal.WithLabelValues(in.Model, in.Action, "ok").Inc()
	return result
}

var _ ports.DispatchService = (*DispatchService)(nil)
