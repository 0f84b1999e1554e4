// respell-server exposes the edit-plan engine over HTTP for editor
// integrations: POST a word pair, get the full plan back as JSON.
package main

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/jsnanigans/respell/pkg/morph"
)

// PlanRequest is the body of a POST /plan call.
type PlanRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// planHandler decodes a word pair and responds with its edit plan. Plans
// are memoized per pair, so repeated lookups for the same correction are
// served from cache.
func planHandler(logger *zap.Logger, planner *morph.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
			return
		}

		var req PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		plan := planner.Plan(req.Source, req.Target)
		logger.Info("plan served",
			zap.String("source", req.Source),
			zap.String("target", req.Target),
			zap.Int("deletions", len(plan.Deletions)),
			zap.Int("insertions", len(plan.Insertions)),
			zap.Int("moves", len(plan.Moves)))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(plan); err != nil {
			logger.Error("encoding plan", zap.Error(err))
		}
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/plan", planHandler(logger, morph.NewPlanner(morph.Options{})))

	logger.Info("starting server", zap.String("port", port))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(":"+port, mux)))
}
