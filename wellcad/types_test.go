package wellcad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogTypeString(t *testing.T) {
	require.Equal(t, "Well", LogTypeWell.String())
	require.Equal(t, "Polar and Rose", LogTypePolarAndRose.String())
	require.Equal(t, "Unknown", LogType(11).String())
}

func TestProcessConstructors(t *testing.T) {
	require.Equal(t, Process{}, WithConfig(""))
	require.True(t, Interactive().Prompt)
	require.Equal(t, "c.ini", WithConfig("c.ini").Config)
}
