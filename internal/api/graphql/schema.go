package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// NewSchema builds the query and mutation schema served at /graphql.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	nonNullString := graphql.NewNonNull(graphql.String)
	auditField := &graphql.Field{
		Type:    creationInformationType,
		Resolve: r.nestedCreationInformation,
	}

	listType := graphql.NewObject(graphql.ObjectConfig{
		Name: "List",
		Fields: graphql.Fields{
			"uuid":                    &graphql.Field{Type: nonNullString},
			"title":                   &graphql.Field{Type: nonNullString},
			"description":             &graphql.Field{Type: graphql.String},
			"colorHex":                &graphql.Field{Type: graphql.String},
			"taskUuids":               &graphql.Field{Type: graphql.String},
			"parentListUuid":          &graphql.Field{Type: graphql.String},
			"subListUuids":            &graphql.Field{Type: graphql.String},
			"sharedWithUserUuids":     &graphql.Field{Type: graphql.String},
			"creationInformationUuid": &graphql.Field{Type: nonNullString},
			"creationInformation":     auditField,
		},
	})

	taskType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"uuid":                    &graphql.Field{Type: nonNullString},
			"content":                 &graphql.Field{Type: nonNullString},
			"priority":                &graphql.Field{Type: graphql.NewNonNull(priorityEnum)},
			"tagUuids":                &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(nonNullString))},
			"isComplete":              &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"parentListUuid":          &graphql.Field{Type: graphql.String},
			"creationInformationUuid": &graphql.Field{Type: nonNullString},
			"creationInformation":     auditField,
		},
	})

	tagType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Tag",
		Fields: graphql.Fields{
			"uuid":                    &graphql.Field{Type: nonNullString},
			"title":                   &graphql.Field{Type: nonNullString},
			"creationInformationUuid": &graphql.Field{Type: nonNullString},
			"creationInformation":     auditField,
		},
	})

	byUUID := graphql.FieldConfigArgument{
		"uuid": &graphql.ArgumentConfig{Type: nonNullString},
	}
	withInput := func(input *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
		}
	}
	withAudit := func(audit, input *graphql.InputObject) graphql.FieldConfigArgument {
		args := withInput(input)
		args["creationInformation"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(audit)}
		return args
	}
	listOf := func(t graphql.Type) graphql.Output {
		return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allUsers": &graphql.Field{Type: listOf(userType), Resolve: r.allUsers},
			"user":     &graphql.Field{Type: userType, Args: byUUID, Resolve: r.user},
			"allLists": &graphql.Field{Type: listOf(listType), Resolve: r.allLists},
			"list":     &graphql.Field{Type: listType, Args: byUUID, Resolve: r.list},
			"allTasks": &graphql.Field{Type: listOf(taskType), Resolve: r.allTasks},
			"task":     &graphql.Field{Type: taskType, Args: byUUID, Resolve: r.task},
			"tasksByList": &graphql.Field{
				Type: listOf(taskType),
				Args: graphql.FieldConfigArgument{
					"listUuid": &graphql.ArgumentConfig{Type: nonNullString},
				},
				Resolve: r.tasksByList,
			},
			"allTags": &graphql.Field{Type: listOf(tagType), Resolve: r.allTags},
			"tag":     &graphql.Field{Type: tagType, Args: byUUID, Resolve: r.tag},
			"allCreationInformation": &graphql.Field{
				Type:    listOf(creationInformationType),
				Resolve: r.allCreationInformation,
			},
			"creationInformation": &graphql.Field{
				Type:    creationInformationType,
				Args:    byUUID,
				Resolve: r.creationInformation,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type:    graphql.NewNonNull(userType),
				Args:    withInput(createUserInput),
				Resolve: r.createUser,
			},
			"createList": &graphql.Field{
				Type:    graphql.NewNonNull(listType),
				Args:    withAudit(createCreationInformationInput, createListInput),
				Resolve: r.createList,
			},
			"updateList": &graphql.Field{
				Type:    graphql.NewNonNull(listType),
				Args:    withAudit(updateCreationInformationInput, updateListInput),
				Resolve: r.updateList,
			},
			"addTask": &graphql.Field{
				Type:    graphql.NewNonNull(listType),
				Args:    withInput(addTaskInput),
				Resolve: r.addTask,
			},
			"addNewTask": &graphql.Field{
				Type:    graphql.NewNonNull(taskType),
				Args:    withAudit(createCreationInformationInput, createTaskInput),
				Resolve: r.addNewTask,
			},
			"createTask": &graphql.Field{
				Type:    graphql.NewNonNull(taskType),
				Args:    withAudit(createCreationInformationInput, createTaskInput),
				Resolve: r.createTask,
			},
			"createTag": &graphql.Field{
				Type:    graphql.NewNonNull(tagType),
				Args:    withAudit(createCreationInformationInput, createTagInput),
				Resolve: r.createTag,
			},
			"updateCreationInformation": &graphql.Field{
				Type: graphql.NewNonNull(creationInformationType),
				Args: graphql.FieldConfigArgument{
					"uuid":  &graphql.ArgumentConfig{Type: nonNullString},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCreationInformationInput)},
				},
				Resolve: r.updateCreationInformation,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	return schema, nil
}
