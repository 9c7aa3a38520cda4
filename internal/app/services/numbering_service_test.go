package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/servicehub/servicehub-core/internal/app/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 30, 15, 4, 5, 0, time.UTC)
}

func newTestNumberingService(randValues ...int64) *NumberingService {
	i := 0
	return &NumberingService{
		now: fixedClock,
		randInt: func(max int64) (int64, error) {
			if i >= len(randValues) {
				return 0, fmt.Errorf("random source exhausted after %d draws", i)
			}
			n := randValues[i]
			i++
			return n, nil
		},
	}
}

func neverExists(string) (bool, error) {
	return false, nil
}

func TestGenerate_Format(t *testing.T) {
	t.Parallel()

	svc := newTestNumberingService(42)

	number, err := svc.generate(QuoteNumberPrefix, neverExists)
	require.NoError(t, err)
	assert.Equal(t, "QT-20240130-0042", number)
}

func TestGenerate_SuffixZeroPadded(t *testing.T) {
	t.Parallel()

	svc := newTestNumberingService(7)

	number, err := svc.generate(OrderNumberPrefix, neverExists)
	require.NoError(t, err)
	assert.Equal(t, "SO-20240130-0007", number)

	pattern := regexp.MustCompile(`^SO-\d{8}-\d{4}$`)
	assert.Regexp(t, pattern, number)
}

func TestGenerate_PrefixPerEntity(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{QuoteNumberPrefix, ProposalNumberPrefix, OrderNumberPrefix} {
		svc := newTestNumberingService(1234)

		number, err := svc.generate(prefix, neverExists)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s-20240130-1234", prefix), number)
	}
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	svc := newTestNumberingService(1, 2)

	var checked []string
	number, err := svc.generate(ProposalNumberPrefix, func(candidate string) (bool, error) {
		checked = append(checked, candidate)
		return candidate == "PR-20240130-0001", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "PR-20240130-0002", number)
	assert.Equal(t, []string{"PR-20240130-0001", "PR-20240130-0002"}, checked)
}

func TestGenerate_ExhaustionFails(t *testing.T) {
	t.Parallel()

	randValues := make([]int64, maxIdentifierAttempts)
	for i := range randValues {
		randValues[i] = int64(i)
	}
	svc := newTestNumberingService(randValues...)

	attempts := 0
	_, err := svc.generate(QuoteNumberPrefix, func(string) (bool, error) {
		attempts++
		return true, nil
	})

	require.Error(t, err)
	assert.Equal(t, maxIdentifierAttempts, attempts)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode)
	assert.Contains(t, appErr.Message, "QT")
}

func TestGenerate_ExistsErrorPropagates(t *testing.T) {
	t.Parallel()

	svc := newTestNumberingService(5)

	_, err := svc.generate(QuoteNumberPrefix, func(string) (bool, error) {
		return false, fmt.Errorf("connection refused")
	})

	require.Error(t, err)
}

func TestCryptoRandBelow_Range(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		n, err := cryptoRandBelow(10000)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(10000))
	}
}
