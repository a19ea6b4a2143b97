package exchange

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFault(t *testing.T) {
	require.NoError(t, ParseFault(nil))

	plain := errors.New("connection refused")
	require.Equal(t, plain, ParseFault(plain))
	require.False(t, IsKind(plain, KindNotFound))

	vmErr := errors.New(`invocation failed: at instruction 712 (THROW): unhandled exception: "NotFound: listing 5"`)
	err := ParseFault(vmErr)

	var fe *FaultError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, KindNotFound, fe.Kind)
	require.Equal(t, "NotFound: listing 5", fe.Message)
	require.ErrorIs(t, err, vmErr)

	t.Run("wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("release payment: %w",
			errors.New(`unhandled exception: "Unauthorized: request 3 is still locked"`))
		require.True(t, IsKind(wrapped, KindUnauthorized))
		require.False(t, IsKind(wrapped, KindStillLocked))
	})

	t.Run("without quotes", func(t *testing.T) {
		err := ParseFault(errors.New("AlreadyResolved: request 7"))
		require.True(t, IsKind(err, KindAlreadyResolved))
		require.Equal(t, "AlreadyResolved: request 7", err.Error())
	})
}
