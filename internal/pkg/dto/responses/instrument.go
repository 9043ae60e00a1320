package responses

type Joint struct {
	Key         string              `json:"key" yaml:"key"`
	Name        string              `json:"name" yaml:"name"`
	Instruments []InstrumentSummary `json:"instruments" yaml:"instruments"`
}

type InstrumentSummary struct {
	ID            string `json:"id" yaml:"id"`
	ShortName     string `json:"short_name" yaml:"short_name"`
	FullName      string `json:"full_name" yaml:"full_name"`
	Description   string `json:"description" yaml:"description"`
	Validation    string `json:"validation" yaml:"validation"`
	QuestionCount int    `json:"question_count" yaml:"question_count"`
}

type InstrumentDetail struct {
	InstrumentSummary `yaml:",inline"`
	JointKey          string     `json:"joint_key" yaml:"joint_key"`
	Citation          string     `json:"citation" yaml:"citation"`
	MCID              string     `json:"mcid,omitempty" yaml:"mcid,omitempty"`
	OptionSchema      string     `json:"option_schema" yaml:"option_schema"`
	PrimaryMetric     string     `json:"primary_metric" yaml:"primary_metric"`
	Direction         string     `json:"direction" yaml:"direction"`
	Interpretations   []string   `json:"interpretations" yaml:"interpretations"`
	Questions         []Question `json:"questions" yaml:"questions"`
}

type Question struct {
	ID      int      `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Section string   `json:"section,omitempty" yaml:"section,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

type Option struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// CatalogExport is the full catalog in one document, one entry per joint.
type CatalogExport struct {
	Joints []JointExport `json:"joints" yaml:"joints"`
}

type JointExport struct {
	Key         string             `json:"key" yaml:"key"`
	Name        string             `json:"name" yaml:"name"`
	Instruments []InstrumentDetail `json:"instruments" yaml:"instruments"`
}
