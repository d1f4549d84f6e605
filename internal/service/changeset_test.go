package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type changesetPayload struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Priority int    `json:"priority"`
}

func TestComputeChangeSetReportsChangedFieldsOnly(t *testing.T) {
	oldPayload := changesetPayload{Name: "Sistemas", Duration: "5 years", Priority: 1}
	newPayload := changesetPayload{Name: "Sistemas", Duration: "5 años", Priority: 1}

	changes, err := ComputeChangeSet(oldPayload, newPayload)
	require.NoError(t, err)
	require.Len(t, changes, 1)

	pair, ok := changes["duration"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "5 years", pair["old"])
	require.Equal(t, "5 años", pair["new"])
}

func TestComputeChangeSetCoercesValuesToStrings(t *testing.T) {
	oldPayload := map[string]interface{}{"priority": 1}
	newPayload := map[string]interface{}{"priority": "1"}

	changes, err := ComputeChangeSet(oldPayload, newPayload)
	require.NoError(t, err)
	require.Empty(t, changes)
}

func TestComputeChangeSetIdenticalPayloadsYieldEmptySet(t *testing.T) {
	payload := changesetPayload{Name: "Sistemas", Duration: "5 años", Priority: 1}

	changes, err := ComputeChangeSet(payload, payload)
	require.NoError(t, err)
	require.Empty(t, changes)
}

func TestCreateChangeSetUsesNullOldSide(t *testing.T) {
	changes, err := CreateChangeSet(changesetPayload{Name: "Sistemas", Duration: "5 años", Priority: 2})
	require.NoError(t, err)
	require.Len(t, changes, 3)

	pair, ok := changes["name"].(map[string]interface{})
	require.True(t, ok)
	require.Nil(t, pair["old"])
	require.Equal(t, "Sistemas", pair["new"])
}
