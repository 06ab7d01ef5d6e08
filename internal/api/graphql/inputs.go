package graphql

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/graphql-go/graphql"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

func inputFields(required []string, optional map[string]graphql.Input) graphql.InputObjectConfigFieldMap {
	fields := graphql.InputObjectConfigFieldMap{}
	for _, name := range required {
		fields[name] = &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)}
	}
	for name, typ := range optional {
		fields[name] = &graphql.InputObjectFieldConfig{Type: typ}
	}
	return fields
}

var createUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateUserInput",
	Fields: inputFields([]string{"username", "password"}, map[string]graphql.Input{
		"nickname": graphql.String,
	}),
})

var createCreationInformationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "CreateCreationInformationInput",
	Fields: inputFields([]string{"creatorUserUuid"}, nil),
})

var updateCreationInformationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "UpdateCreationInformationInput",
	Fields: inputFields([]string{"lastUpdatedByUserUuid"}, nil),
})

// Collection fields are JSON array text, e.g. "[\"<uuid>\"]".
var createListInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateListInput",
	Fields: inputFields([]string{"title"}, map[string]graphql.Input{
		"description":         graphql.String,
		"colorHex":            graphql.String,
		"taskUuids":           graphql.String,
		"parentListUuid":      graphql.String,
		"subListUuids":        graphql.String,
		"sharedWithUserUuids": graphql.String,
	}),
})

var updateListInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateListInput",
	Fields: inputFields([]string{"uuid"}, map[string]graphql.Input{
		"title":       graphql.String,
		"description": graphql.String,
		"colorHex":    graphql.String,
	}),
})

var addTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "AddTaskInput",
	Fields: inputFields([]string{"lastUpdatedByUserUuid", "parentListUuid", "taskUuid"}, nil),
})

// priority is a raw integer; values outside LOW..HIGH fall back to LOW.
var createTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTaskInput",
	Fields: inputFields([]string{"content"}, map[string]graphql.Input{
		"priority":       graphql.Int,
		"tagUuids":       graphql.String,
		"parentListUuid": graphql.String,
		"isComplete":     graphql.Boolean,
	}),
})

var createTagInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "CreateTagInput",
	Fields: inputFields([]string{"title"}, nil),
})

// decodeArg converts the named argument into T through its json tags.
func decodeArg[T any](args map[string]any, name string) (T, error) {
	var out T

	raw, ok := args[name]
	if !ok {
		return out, &model.ValidationError{Field: name, Reason: "required"}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("failed to encode argument %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &model.ValidationError{Field: name, Value: string(data), Reason: err.Error()}
	}
	return out, nil
}

func stringArg(args map[string]any, name string) (string, error) {
	s, ok := args[name].(string)
	if !ok {
		return "", &model.ValidationError{Field: name, Reason: "required"}
	}
	return s, nil
}
