package quality

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityInfo < SeverityWarning)
	assert.True(t, SeverityWarning < SeverityCritical)
}

func TestSeverityMaxNeverDowngrades(t *testing.T) {
	assert.Equal(t, SeverityCritical, SeverityCritical.Max(SeverityWarning))
	assert.Equal(t, SeverityCritical, SeverityWarning.Max(SeverityCritical))
	assert.Equal(t, SeverityWarning, SeverityInfo.Max(SeverityWarning))
	assert.Equal(t, SeverityInfo, SeverityInfo.Max(SeverityInfo))
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for _, sev := range []Severity{SeverityInfo, SeverityWarning, SeverityCritical} {
		data, err := json.Marshal(sev)
		require.NoError(t, err)

		var back Severity
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, sev, back)
	}
}

func TestSeverityMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(SeverityCritical)
	require.NoError(t, err)
	assert.Equal(t, `"CRITICAL"`, string(data))
}

func TestSeverityUnmarshalRejectsUnknown(t *testing.T) {
	var sev Severity
	assert.Error(t, json.Unmarshal([]byte(`"SEVERE"`), &sev))
}
