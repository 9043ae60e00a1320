package constvars

const (
	URLParamJointKey     = "joint_key"
	URLParamInstrumentID = "instrument_id"
	URLParamRunID        = "run_id"
)
