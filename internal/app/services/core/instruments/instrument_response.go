package instruments

import "outcomes-service/internal/pkg/dto/responses"

func (j *JointRegion) ConvertIntoResponse() responses.Joint {
	summaries := make([]responses.InstrumentSummary, 0, len(j.Instruments))
	for _, instrument := range j.Instruments {
		summaries = append(summaries, instrument.ConvertIntoSummary())
	}
	return responses.Joint{
		Key:         j.Key,
		Name:        j.Name,
		Instruments: summaries,
	}
}

func (i *Instrument) ConvertIntoSummary() responses.InstrumentSummary {
	return responses.InstrumentSummary{
		ID:            i.ID,
		ShortName:     i.ShortName,
		FullName:      i.FullName,
		Description:   i.Description,
		Validation:    i.Validation,
		QuestionCount: i.QuestionCount(),
	}
}

func (i *Instrument) ConvertIntoDetail(jointKey string) responses.InstrumentDetail {
	questions := make([]responses.Question, 0, len(i.Questions))
	for _, question := range i.Questions {
		questions = append(questions, i.ConvertQuestionIntoResponse(question))
	}
	return responses.InstrumentDetail{
		InstrumentSummary: i.ConvertIntoSummary(),
		JointKey:          jointKey,
		Citation:          i.Citation,
		MCID:              i.MCID,
		OptionSchema:      string(i.Options.Kind()),
		PrimaryMetric:     i.Primary,
		Direction:         string(i.Direction()),
		Interpretations:   i.Ladder.Labels(),
		Questions:         questions,
	}
}

// ConvertQuestionIntoResponse attaches the options a question offers.
func (i *Instrument) ConvertQuestionIntoResponse(question Question) responses.Question {
	options := i.Options.OptionsFor(question.ID)
	converted := make([]responses.Option, 0, len(options))
	for _, option := range options {
		converted = append(converted, responses.Option{Value: option.Value, Label: option.Label})
	}
	return responses.Question{
		ID:      question.ID,
		Text:    question.Text,
		Section: question.Section,
		Options: converted,
	}
}
