package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetJointsSuccessMessage      = "get joints successfully"
	GetInstrumentsSuccessMessage = "get instruments successfully"
	GetInstrumentSuccessMessage  = "get instrument successfully"

	CreateAssessmentSuccessMessage    = "assessment started successfully"
	GetAssessmentSuccessMessage       = "get assessment successfully"
	UpdatePatientSuccessMessage       = "patient updated successfully"
	SelectJointSuccessMessage         = "joint selected successfully"
	SelectInstrumentSuccessMessage    = "instrument selected successfully"
	AnswerSuccessMessage              = "answer recorded successfully"
	NavigateSuccessMessage            = "cursor moved successfully"
	ResetAssessmentSuccessMessage     = "assessment reset successfully"
	DeleteAssessmentSuccessMessage    = "assessment deleted successfully"
	AssessmentCompletedSuccessMessage = "assessment completed successfully"
)
