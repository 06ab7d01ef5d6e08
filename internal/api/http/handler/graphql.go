package handler

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/umbreon222/Todo-List-Api/internal/logger"
)

const maxRequestBytes = 1 << 20

var graphqlOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "todo_graphql_operations_total",
		Help: "GraphQL operations by outcome",
	},
	[]string{"outcome"},
)

type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// GraphQL executes POSTed GraphQL documents against the schema.
type GraphQL struct {
	schema graphql.Schema
	logger *logger.Logger
}

func NewGraphQL(schema graphql.Schema, logger *logger.Logger) *GraphQL {
	return &GraphQL{schema: schema, logger: logger}
}

func (h *GraphQL) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		h.logger.Debug("GraphQL handler: failed to decode request", "error", err.Error())
		graphqlOperations.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "request body must be a JSON object with a query")
		return
	}
	if req.Query == "" {
		graphqlOperations.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	outcome := "ok"
	if result.HasErrors() {
		outcome = "error"
		for _, e := range result.Errors {
			h.logger.Info("GraphQL handler: operation returned error",
				"operation", req.OperationName,
				"message", e.Message,
				"extensions", e.Extensions)
		}
	}
	graphqlOperations.WithLabelValues(outcome).Inc()

	writeJSON(w, http.StatusOK, result)
}
