package test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/drafts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) saveDraftRequest(ctx context.Context, date string, dayLog healthstats.DayLog) drafts.DraftResponse {
	var draftResp drafts.DraftResponse
	s.doJSON(s.appRequest(ctx, "PUT", "/healthstats/draft/"+date, dayLog), http.StatusAccepted, &draftResp)
	return draftResp
}

func (s *IntegrationTestSuite) getDraftRequest(ctx context.Context, date string) healthstats.DayLog {
	var dayLog healthstats.DayLog
	s.doJSON(s.appRequest(ctx, "GET", "/healthstats/draft/"+date, nil), http.StatusOK, &dayLog)
	return dayLog
}

func (s *IntegrationTestSuite) TestDrafts() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	s.deleteAllDayLogs(ctx)

	today := dayOffset(0)
	draft := healthstats.DayLog{
		DayType: healthstats.TrainingDayNoGym,
		Meals: []healthstats.MealItem{
			{Slot: healthstats.MealSlotBreakfast, Name: gofakeit.Breakfast(), P: 30, F: 10, C: 40, Kcal: 370, Source: healthstats.MealSourceManual},
		},
	}

	t.Run("save, get, cancel", func(t *testing.T) {
		saveResp := s.saveDraftRequest(ctx, today, draft)
		assert.Equal(t, today, saveResp.Date)
		assert.Equal(t, drafts.StatePending, saveResp.State)

		got := s.getDraftRequest(ctx, today)
		// the date in the path wins, the body never carried one
		assert.Equal(t, today, got.Date)
		require.Len(t, got.Meals, 1)
		assert.Equal(t, draft.Meals[0].Name, got.Meals[0].Name)

		var cancelResp drafts.DraftResponse
		s.doJSON(s.appRequest(ctx, "DELETE", "/healthstats/draft/"+today, nil), http.StatusOK, &cancelResp)
		assert.Equal(t, drafts.StateCancelled, cancelResp.State)

		// cancelled draft is gone and never became a day log
		assert.Equal(t, http.StatusNotFound, s.statusCodeOf(
			s.appRequest(ctx, "GET", "/healthstats/draft/"+today, nil),
		))
		assert.False(t, s.dayLogExists(ctx, today))
	})

	t.Run("explicit flush", func(t *testing.T) {
		s.saveDraftRequest(ctx, today, draft)

		var flushResp drafts.DraftResponse
		s.doJSON(s.appRequest(ctx, "POST", "/healthstats/draft/"+today+"/flush", nil), http.StatusOK, &flushResp)
		assert.Equal(t, drafts.StateFlushed, flushResp.State)

		flushed := s.getDayLogRequest(ctx, today)
		assert.Equal(t, today, flushed.Date)
		assert.Equal(t, healthstats.TrainingDayNoGym, flushed.DayType)
		require.Len(t, flushed.Meals, 1)
		// adherence got computed on the way to the day log
		assert.True(t, flushed.Adherence.NutritionPercent > 0)
		assert.Contains(t, flushed.Adherence.KPIFlags, "missing_"+string(healthstats.MealSlotLunch))
		assert.Contains(t, flushed.Adherence.KPIFlags, "missing_"+string(healthstats.MealSlotDinner))

		// the flush consumed the draft
		assert.Equal(t, http.StatusNotFound, s.statusCodeOf(
			s.appRequest(ctx, "GET", "/healthstats/draft/"+today, nil),
		))
		assert.Equal(t, http.StatusNotFound, s.statusCodeOf(
			s.appRequest(ctx, "POST", "/healthstats/draft/"+today+"/flush", nil),
		))
	})

	t.Run("debounced auto flush", func(t *testing.T) {
		autoFlushDate := dayOffset(1)
		s.saveDraftRequest(ctx, autoFlushDate, draft)

		// the test config flushes drafts after 2s of quiet
		require.Eventually(t, func() bool {
			return s.dayLogExists(ctx, autoFlushDate)
		}, 10*time.Second, 250*time.Millisecond)

		assert.Equal(t, http.StatusNotFound, s.statusCodeOf(
			s.appRequest(ctx, "GET", "/healthstats/draft/"+autoFlushDate, nil),
		))

		// leave no trace for the tests that follow
		s.deleteDayLogRequest(ctx, autoFlushDate)
	})
}
