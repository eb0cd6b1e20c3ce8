package redis

import (
	"testing"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResultsKey(t *testing.T) {
	r := &JournalRepo{}
	assert.Equal(t, "print_job:abc:results", r.resultsKey("abc"))
}

func TestRedisModelRoundTrip(t *testing.T) {
	res := domain.ExceptionResult(7, "paper out")
	res.Command = "cut"
	res.Seq = 12

	got := toDomain(toRedisModel(res))

	assert.Equal(t, res, got)
	assert.True(t, got.Failed())
}
