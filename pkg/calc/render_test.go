package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	assert.Equal(t, Screen{Primary: "0"}, Render(NewState()))

	s, _, err := Run(Digit(1), Digit(2), Op(Add))
	require.NoError(t, err)
	assert.Equal(t, Screen{Primary: "12", Secondary: "12 +"}, Render(s))

	s, _, err = Apply(s, Digit(3))
	require.NoError(t, err)
	assert.Equal(t, Screen{Primary: "3", Secondary: "12 +"}, Render(s))

	s, _, err = Apply(s, Op(Divide))
	require.NoError(t, err)
	assert.Equal(t, Screen{Primary: "15", Secondary: "15 ÷"}, Render(s))

	s, _, err = Apply(s, Equals())
	require.NoError(t, err)
	assert.Equal(t, Screen{Primary: "1"}, Render(s))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "operator_pending", PhaseOperatorPending.String())
	assert.Equal(t, "division_by_zero", SignalDivisionByZero.String())
}
