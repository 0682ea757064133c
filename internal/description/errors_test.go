package description

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorUnwrapAndKind(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("describe: %w", &Error{Kind: KindNetwork, Op: "chat completion", Err: cause})

	require.Equal(t, KindNetwork, KindOf(err))
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "network failure: connection refused")
	require.Equal(t, Kind(""), KindOf(cause))
}

func TestRecordDocument(t *testing.T) {
	r := Record{Name: "Alice", Description: "Alice is a common given name of Germanic origin."}
	require.Equal(t, map[string]string{"Alice": "Alice is a common given name of Germanic origin."}, r.Document())
}
