package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jsnanigans/respell/pkg/morph"
)

func TestPlanHandler(t *testing.T) {
	handler := planHandler(zap.NewNop(), morph.NewPlanner(morph.Options{}))

	t.Run("serves a plan for a word pair", func(t *testing.T) {
		body := `{"source":"recieve","target":"receive"}`
		req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
		rr := httptest.NewRecorder()

		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var plan morph.EditPlan
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&plan))
		assert.Equal(t, "recieve", plan.Source)
		assert.Equal(t, "receive", plan.Target)
		assert.Empty(t, plan.Deletions)
		assert.Empty(t, plan.Insertions)
		assert.NotEmpty(t, plan.Moves)
		assert.NotEmpty(t, plan.HighlightIndices)
	})

	t.Run("rejects non-POST methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/plan", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty words are a valid pair", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"source":"","target":""}`))
		rr := httptest.NewRecorder()

		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var plan morph.EditPlan
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&plan))
		assert.False(t, plan.ShouldDelete)
		assert.False(t, plan.ShouldMove)
		assert.False(t, plan.ShouldInsert)
	})
}
