package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/umbreon222/Todo-List-Api/internal/logger"
	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/service"
)

// Resolver binds GraphQL fields to the entity services.
type Resolver struct {
	users  *service.User
	infos  *service.CreationInformation
	lists  *service.List
	tasks  *service.Task
	tags   *service.Tag
	logger *logger.Logger
}

func NewResolver(
	users *service.User,
	infos *service.CreationInformation,
	lists *service.List,
	tasks *service.Task,
	tags *service.Tag,
	logger *logger.Logger,
) *Resolver {
	return &Resolver{
		users:  users,
		infos:  infos,
		lists:  lists,
		tasks:  tasks,
		tags:   tags,
		logger: logger,
	}
}

func (r *Resolver) fail(field string, err error) error {
	r.logger.Debug("GraphQL resolver: field failed", "field", field, "error", err.Error())
	return handleError(err)
}

// Queries

func (r *Resolver) allUsers(p graphql.ResolveParams) (any, error) {
	users, err := r.users.AllUsers(p.Context)
	if err != nil {
		return nil, r.fail("allUsers", err)
	}
	return mapSlice(users, userToMap), nil
}

func (r *Resolver) user(p graphql.ResolveParams) (any, error) {
	id, err := stringArg(p.Args, "uuid")
	if err != nil {
		return nil, r.fail("user", model.NewOperationError(model.MsgInternalError, err))
	}
	user, err := r.users.GetUserByUUID(p.Context, id)
	if err != nil {
		return nil, r.fail("user", err)
	}
	if user == nil {
		return nil, nil
	}
	return userToMap(*user), nil
}

func (r *Resolver) allCreationInformation(p graphql.ResolveParams) (any, error) {
	infos, err := r.infos.AllCreationInformation(p.Context)
	if err != nil {
		return nil, r.fail("allCreationInformation", err)
	}
	return mapSlice(infos, creationInformationToMap), nil
}

func (r *Resolver) creationInformation(p graphql.ResolveParams) (any, error) {
	id, err := stringArg(p.Args, "uuid")
	if err != nil {
		return nil, r.fail("creationInformation", model.NewOperationError(model.MsgInternalError, err))
	}
	return r.creationInformationByUUID(p, id)
}

// nestedCreationInformation resolves the creationInformation field of a List, Task or Tag.
func (r *Resolver) nestedCreationInformation(p graphql.ResolveParams) (any, error) {
	source, _ := p.Source.(map[string]any)
	id, _ := source["creationInformationUuid"].(string)
	return r.creationInformationByUUID(p, id)
}

func (r *Resolver) creationInformationByUUID(p graphql.ResolveParams, id string) (any, error) {
	info, err := r.infos.GetCreationInformationByUUID(p.Context, id)
	if err != nil {
		return nil, r.fail("creationInformation", err)
	}
	if info == nil {
		return nil, nil
	}
	return creationInformationToMap(*info), nil
}

func (r *Resolver) allLists(p graphql.ResolveParams) (any, error) {
	lists, err := r.lists.AllLists(p.Context)
	if err != nil {
		return nil, r.fail("allLists", err)
	}
	return mapSlice(lists, listToMap), nil
}

func (r *Resolver) list(p graphql.ResolveParams) (any, error) {
	id, err := stringArg(p.Args, "uuid")
	if err != nil {
		return nil, r.fail("list", model.NewOperationError(model.MsgInternalError, err))
	}
	list, err := r.lists.GetListByUUID(p.Context, id)
	if err != nil {
		return nil, r.fail("list", err)
	}
	if list == nil {
		return nil, nil
	}
	return listToMap(*list), nil
}

func (r *Resolver) allTasks(p graphql.ResolveParams) (any, error) {
	tasks, err := r.tasks.AllTasks(p.Context)
	if err != nil {
		return nil, r.fail("allTasks", err)
	}
	return mapSlice(tasks, taskToMap), nil
}

func (r *Resolver) task(p graphql.ResolveParams) (any, error) {
	id, err := stringArg(p.Args, "uuid")
	if err != nil {
		return nil, r.fail("task", model.NewOperationError(model.MsgInternalError, err))
	}
	task, err := r.tasks.GetTaskByUUID(p.Context, id)
	if err != nil {
		return nil, r.fail("task", err)
	}
	if task == nil {
		return nil, nil
	}
	return taskToMap(*task), nil
}

func (r *Resolver) tasksByList(p graphql.ResolveParams) (any, error) {
	id, err := stringArg(p.Args, "listUuid")
	if err != nil {
		return nil, r.fail("tasksByList", model.NewOperationError(model.MsgInternalError, err))
	}
	tasks, err := r.tasks.TasksByList(p.Context, id)
	if err != nil {
		return nil, r.fail("tasksByList", err)
	}
	return mapSlice(tasks, taskToMap), nil
}

func (r *Resolver) allTags(p graphql.ResolveParams) (any, error) {
	tags, err := r.tags.AllTags(p.Context)
	if err != nil {
		return nil, r.fail("allTags", err)
	}
	return mapSlice(tags, tagToMap), nil
}

func (r *Resolver) tag(p graphql.ResolveParams) (any, error) {
	id, err := stringArg(p.Args, "uuid")
	if err != nil {
		return nil, r.fail("tag", model.NewOperationError(model.MsgInternalError, err))
	}
	tag, err := r.tags.GetTagByUUID(p.Context, id)
	if err != nil {
		return nil, r.fail("tag", err)
	}
	if tag == nil {
		return nil, nil
	}
	return tagToMap(*tag), nil
}

// Mutations

func (r *Resolver) createUser(p graphql.ResolveParams) (any, error) {
	input, err := decodeArg[model.CreateUserInput](p.Args, "input")
	if err != nil {
		return nil, r.fail("createUser", model.NewOperationError(model.MsgUserNotCreated, err))
	}
	user, err := r.users.CreateUser(p.Context, input)
	if err != nil {
		return nil, r.fail("createUser", err)
	}
	return userToMap(user), nil
}

func (r *Resolver) updateCreationInformation(p graphql.ResolveParams) (any, error) {
	id, err := stringArg(p.Args, "uuid")
	if err != nil {
		return nil, r.fail("updateCreationInformation", model.NewOperationError(model.MsgCreationInformationNotUpdated, err))
	}
	input, err := decodeArg[model.UpdateCreationInformationInput](p.Args, "input")
	if err != nil {
		return nil, r.fail("updateCreationInformation", model.NewOperationError(model.MsgCreationInformationNotUpdated, err))
	}
	info, err := r.infos.UpdateCreationInformation(p.Context, id, input)
	if err != nil {
		return nil, r.fail("updateCreationInformation", err)
	}
	return creationInformationToMap(info), nil
}

func (r *Resolver) createList(p graphql.ResolveParams) (any, error) {
	infoInput, input, err := decodeCreateArgs[model.CreateListInput](p.Args)
	if err != nil {
		return nil, r.fail("createList", model.NewOperationError(model.MsgListNotCreated, err))
	}
	list, err := r.lists.CreateList(p.Context, infoInput, input)
	if err != nil {
		return nil, r.fail("createList", err)
	}
	return listToMap(list), nil
}

func (r *Resolver) updateList(p graphql.ResolveParams) (any, error) {
	infoInput, err := decodeArg[model.UpdateCreationInformationInput](p.Args, "creationInformation")
	if err != nil {
		return nil, r.fail("updateList", model.NewOperationError(model.MsgListNotUpdated, err))
	}
	input, err := decodeArg[model.UpdateListInput](p.Args, "input")
	if err != nil {
		return nil, r.fail("updateList", model.NewOperationError(model.MsgListNotUpdated, err))
	}
	list, err := r.lists.UpdateList(p.Context, infoInput, input)
	if err != nil {
		return nil, r.fail("updateList", err)
	}
	return listToMap(list), nil
}

func (r *Resolver) addTask(p graphql.ResolveParams) (any, error) {
	input, err := decodeArg[model.AddTaskInput](p.Args, "input")
	if err != nil {
		return nil, r.fail("addTask", model.NewOperationError(model.MsgTaskNotAdded, err))
	}
	list, err := r.lists.AddTask(p.Context, input)
	if err != nil {
		return nil, r.fail("addTask", err)
	}
	return listToMap(list), nil
}

func (r *Resolver) addNewTask(p graphql.ResolveParams) (any, error) {
	infoInput, input, err := decodeCreateArgs[model.CreateTaskInput](p.Args)
	if err != nil {
		return nil, r.fail("addNewTask", model.NewOperationError(model.MsgTaskNotAdded, err))
	}
	task, err := r.lists.AddNewTask(p.Context, infoInput, input)
	if err != nil {
		return nil, r.fail("addNewTask", err)
	}
	return taskToMap(task), nil
}

func (r *Resolver) createTask(p graphql.ResolveParams) (any, error) {
	infoInput, input, err := decodeCreateArgs[model.CreateTaskInput](p.Args)
	if err != nil {
		return nil, r.fail("createTask", model.NewOperationError(model.MsgTaskNotCreated, err))
	}
	task, err := r.tasks.CreateTask(p.Context, infoInput, input)
	if err != nil {
		return nil, r.fail("createTask", err)
	}
	return taskToMap(task), nil
}

func (r *Resolver) createTag(p graphql.ResolveParams) (any, error) {
	infoInput, input, err := decodeCreateArgs[model.CreateTagInput](p.Args)
	if err != nil {
		return nil, r.fail("createTag", model.NewOperationError(model.MsgTagNotCreated, err))
	}
	tag, err := r.tags.CreateTag(p.Context, infoInput, input)
	if err != nil {
		return nil, r.fail("createTag", err)
	}
	return tagToMap(tag), nil
}

func decodeCreateArgs[T any](args map[string]any) (model.CreateCreationInformationInput, T, error) {
	var input T
	infoInput, err := decodeArg[model.CreateCreationInformationInput](args, "creationInformation")
	if err != nil {
		return infoInput, input, err
	}
	input, err = decodeArg[T](args, "input")
	return infoInput, input, err
}
