package leads

import (
	"github.com/shopspring/decimal"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// PipelineSummary agrega los leads por etapa, en el orden del pipeline.
func PipelineSummary(leads []entity.Lead) dto.PipelineSummaryDTO {
	idx := make(map[string]int, len(entity.PipelineStages))
	out := dto.PipelineSummaryDTO{
		Stages:         make([]dto.PipelineStageDTO, len(entity.PipelineStages)),
		WeightedValue:  decimal.Zero,
		ConversionRate: decimal.Zero,
	}
	for i, st := range entity.PipelineStages {
		idx[st] = i
		out.Stages[i] = dto.PipelineStageDTO{Stage: st, Value: decimal.Zero, WeightedValue: decimal.Zero}
	}

	var won, lost int
	for _, l := range leads {
		out.TotalLeads++
		i, ok := idx[l.Stage]
		if !ok {
			continue
		}
		st := &out.Stages[i]
		st.Count++
		st.Value = st.Value.Add(l.EstimatedValue)
		w := l.WeightedValue()
		st.WeightedValue = st.WeightedValue.Add(w)

		switch l.Stage {
		case entity.StageCerrado:
			won++
		case entity.StagePerdido:
			lost++
		default:
			out.OpenLeads++
			out.WeightedValue = out.WeightedValue.Add(w)
		}
	}
	if won+lost > 0 {
		out.ConversionRate = decimal.NewFromInt(int64(won * 100)).Div(decimal.NewFromInt(int64(won + lost))).Round(2)
	}
	return out
}
