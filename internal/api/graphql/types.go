package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var priorityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Priority",
	Values: graphql.EnumValueConfigMap{
		model.PriorityLow.String():    &graphql.EnumValueConfig{Value: model.PriorityLow},
		model.PriorityNormal.String(): &graphql.EnumValueConfig{Value: model.PriorityNormal},
		model.PriorityHigh.String():   &graphql.EnumValueConfig{Value: model.PriorityHigh},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"uuid":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"nickname": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var creationInformationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreationInformation",
	Fields: graphql.Fields{
		"uuid":                  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"creatorUserUuid":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"creationTime":          &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"lastUpdatedByUserUuid": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastUpdatedTime":       &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

func userToMap(u model.UserRow) map[string]any {
	return map[string]any{
		"uuid":     u.UUID,
		"username": u.Username,
		"nickname": u.Nickname,
	}
}

func creationInformationToMap(i model.CreationInformationRow) map[string]any {
	return map[string]any{
		"uuid":                  i.UUID,
		"creatorUserUuid":       i.CreatorUserUUID,
		"creationTime":          i.CreationTime,
		"lastUpdatedByUserUuid": i.LastUpdatedByUserUUID,
		"lastUpdatedTime":       i.LastUpdatedTime,
	}
}

func listToMap(l model.ListRow) map[string]any {
	return map[string]any{
		"uuid":                    l.UUID,
		"title":                   l.Title,
		"description":             optional(l.Description),
		"colorHex":                optional(l.ColorHex),
		"taskUuids":               optional(l.TaskUUIDs),
		"parentListUuid":          optional(l.ParentListUUID),
		"subListUuids":            optional(l.SubListUUIDs),
		"sharedWithUserUuids":     optional(l.SharedWithUserUUIDs),
		"creationInformationUuid": l.CreationInformationUUID,
	}
}

func taskToMap(t model.TaskRow) map[string]any {
	tags := t.TagUUIDs
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"uuid":                    t.UUID,
		"content":                 t.Content,
		"priority":                t.Priority,
		"tagUuids":                tags,
		"isComplete":              t.IsComplete,
		"parentListUuid":          optional(t.ParentListUUID),
		"creationInformationUuid": t.CreationInformationUUID,
	}
}

func tagToMap(t model.TagRow) map[string]any {
	return map[string]any{
		"uuid":                    t.UUID,
		"title":                   t.Title,
		"creationInformationUuid": t.CreationInformationUUID,
	}
}

// optional turns a nil pointer into an untyped nil so the field resolves to null.
func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func mapSlice[T any](rows []T, convert func(T) map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, convert(row))
	}
	return out
}
