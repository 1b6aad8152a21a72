package simulator

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Seats: []SeatConfig{
			{Name: "tag", Strategy: "tag", Chips: 1000},
			{Name: "station", Strategy: "call", Chips: 1000},
			{Name: "maniac", Strategy: "maniac", Chips: 1000},
		},
		BigBlind:      20,
		Matches:       4,
		HandsPerMatch: 30,
		Seed:          12345,
		SidePots:      true,
		Parallelism:   2,
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	assert.NotNil(t, s.config.Logger)
	assert.Positive(t, s.config.Parallelism)
	assert.Equal(t, 20, s.config.BigBlind)
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Seats = cfg.Seats[:1]
	_, err := New(cfg).Run(context.Background())
	assert.ErrorContains(t, err, "at least 2 seats")

	cfg = testConfig()
	cfg.Matches = 0
	_, err = New(cfg).Run(context.Background())
	assert.ErrorContains(t, err, "at least 1 match")

	cfg = testConfig()
	cfg.Seats[1].Strategy = "shark"
	_, err = New(cfg).Run(context.Background())
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestRunAggregatesSeats(t *testing.T) {
	t.Parallel()

	report, err := New(testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Matches)
	assert.Positive(t, report.Hands)
	assert.LessOrEqual(t, report.Hands, 4*30)
	require.Len(t, report.Seats, 3)

	net := 0
	for _, sr := range report.Seats {
		net += sr.NetChips
		require.Positive(t, sr.Stats.Hands, sr.Name)
		require.NoError(t, sr.Stats.Validate(), sr.Name)
		assert.LessOrEqual(t, sr.MatchWins+sr.Busts, 4*2)
	}
	assert.Zero(t, net, "chips are only moved between seats")
	assert.Equal(t, "tag", report.Seats[0].Strategy)
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := New(testConfig()).Run(context.Background())
	require.NoError(t, err)
	second, err := New(testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Hands, second.Hands)
	for i := range first.Seats {
		assert.Equal(t, first.Seats[i].NetChips, second.Seats[i].NetChips)
		assert.Equal(t, first.Seats[i].Stats.Values, second.Seats[i].Stats.Values)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(testConfig()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	report, err := New(testConfig()).Run(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	PrintSummary(&out, report)
	assert.Contains(t, out.String(), "RESULTS: 4 matches")
	assert.Contains(t, out.String(), "station")
	assert.Contains(t, out.String(), "POT SIZE ANALYSIS")
}
