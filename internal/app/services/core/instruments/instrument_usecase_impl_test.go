package instruments

import (
	"context"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestInstrumentUsecase() *instrumentUsecase {
	return newInstrumentUsecase(DefaultCatalog(), zap.NewNop())
}

func TestInstrumentUsecaseListJoints(t *testing.T) {
	uc := newTestInstrumentUsecase()

	joints, err := uc.ListJoints(context.Background())
	require.NoError(t, err)
	require.Len(t, joints, 6)

	keys := make([]string, 0, len(joints))
	for _, joint := range joints {
		keys = append(keys, joint.Key)
	}
	assert.Equal(t, []string{"joelho", "coluna", "ombro_cotovelo", "quadril", "punho_mao", "tornozelo_pe"}, keys)
	assert.Equal(t, "Joelho", joints[0].Name)
	assert.Len(t, joints[0].Instruments, 3)
}

func TestInstrumentUsecaseListInstruments(t *testing.T) {
	uc := newTestInstrumentUsecase()

	list, err := uc.ListInstruments(context.Background(), "coluna")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ndi", list[0].ID)
	assert.Equal(t, 10, list[0].QuestionCount)

	_, err = uc.ListInstruments(context.Background(), "cotovelo")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientJointNotFound, customErr.ClientMessage)
}

func TestInstrumentUsecaseFindInstrument(t *testing.T) {
	uc := newTestInstrumentUsecase()

	detail, err := uc.FindInstrument(context.Background(), "ombro_cotovelo", "meps")
	require.NoError(t, err)
	assert.Equal(t, "ombro_cotovelo", detail.JointKey)
	assert.Equal(t, string(SchemaPerQuestion), detail.OptionSchema)
	assert.Equal(t, string(HigherIsBetter), detail.Direction)
	assert.Equal(t, MetricTotal, detail.PrimaryMetric)
	require.Len(t, detail.Questions, 4)
	assert.Equal(t, 45, detail.Questions[0].Options[0].Value)
	assert.Equal(t, []string{"Excelente", "Bom", "Regular", "Ruim"}, detail.Interpretations)
}

func TestInstrumentUsecaseFindInstrumentNotFound(t *testing.T) {
	uc := newTestInstrumentUsecase()

	tests := []struct {
		name          string
		jointKey      string
		instrumentID  string
		clientMessage string
	}{
		{"unknown joint", "cotovelo", "dash", constvars.ErrClientJointNotFound},
		{"instrument of another joint", "joelho", "ndi", constvars.ErrClientInstrumentNotFound},
		{"unknown instrument", "quadril", "koos", constvars.ErrClientInstrumentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.FindInstrument(context.Background(), tt.jointKey, tt.instrumentID)
			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
			assert.Equal(t, tt.clientMessage, customErr.ClientMessage)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}
