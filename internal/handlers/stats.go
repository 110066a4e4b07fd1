package handlers

//go:generate mockgen -source=stats.go -destination=mock_stats_test.go -package=handlers

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

const StatsPrefix = "STATS"

// StatsGetter defines the interface for reading a user's score aggregates.
type StatsGetter interface {
	Stats(ctx context.Context, userID int64) (*models.Stats, error)
}

// NewStatsHandler handles STATS|token.
func NewStatsHandler(svc StatsGetter) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		if len(args) != 0 {
			return invalidArguments()
		}
		uid, ok := userID(ctx)
		if !ok {
			return protocol.Error(protocol.MsgInternalError)
		}

		stats, err := svc.Stats(ctx, uid)
		if err != nil {
			return errorReply(ctx, err)
		}

		return protocol.Encode(StatsPrefix, FormatStats(stats))
	}
}

// FormatStats renders the human readable STATS payload.
func FormatStats(stats *models.Stats) string {
	return fmt.Sprintf("Highest Score: %d | Total Games: %d | Average Score: %s",
		stats.Highest, stats.TotalGames, FormatAverage(stats.Average))
}

// FormatAverage rounds to two decimals. Zero prints as "0"; any other value
// keeps at least one fractional digit, so 42 prints as "42.0".
func FormatAverage(avg float64) string {
	if avg == 0 {
		return "0"
	}

	rounded := math.Round(avg*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
